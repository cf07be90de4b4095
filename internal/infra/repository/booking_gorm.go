package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/dto"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// isUniqueViolation reports a postgres 23505 so callers can surface
// duplicate inserts as conflicts instead of 500s.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.ClientProfile, error) {

	var profile models.ClientProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *BookingGormRepository) GetPhotographerByUserID(
	ctx context.Context,
	userID uint,
) (*models.PhotographerProfile, error) {

	var profile models.PhotographerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUpdate(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	if filter.EventType != "" {
		q = q.Where("event_type ILIKE ?", "%"+filter.EventType+"%")
	}

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where(
			"notes ILIKE ? OR event_type ILIKE ? OR location ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize

	var bookings []models.Booking
	if err := q.
		Order("event_date ASC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// --------------------------------------------------
// Application
// --------------------------------------------------

func (r *BookingGormRepository) CreateApplication(
	ctx context.Context,
	app *models.BookingApplication,
) error {

	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("already_applied", "Already applied to this booking")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetApplicationForUpdate(
	ctx context.Context,
	id uint,
) (*models.BookingApplication, error) {

	var app models.BookingApplication
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *BookingGormRepository) UpdateApplication(
	ctx context.Context,
	app *models.BookingApplication,
) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *BookingGormRepository) RejectPendingSiblings(
	ctx context.Context,
	bookingID uint,
	acceptedID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.BookingApplication{}).
		Where(
			"booking_id = ? AND id != ? AND status = ?",
			bookingID, acceptedID, string(domain.ApplicationPending),
		).
		Update("status", string(domain.ApplicationRejected)).Error
}

func (r *BookingGormRepository) ListApplications(
	ctx context.Context,
	bookingID uint,
) ([]dto.ApplicationListDTO, error) {

	var rows []dto.ApplicationListDTO

	err := r.db.WithContext(ctx).
		Model(&models.BookingApplication{}).
		Select(`booking_applications.id AS application_id,
			booking_applications.status,
			booking_applications.created_at AS application_date,
			booking_applications.photographer_id,
			users.name AS photographer_name,
			(SELECT COUNT(*) FROM portfolio_images pf
			 WHERE pf.photographer_id = booking_applications.photographer_id) AS portfolio_count`).
		Joins("JOIN photographer_profiles ON photographer_profiles.id = booking_applications.photographer_id").
		Joins("JOIN users ON users.id = photographer_profiles.user_id").
		Where("booking_applications.booking_id = ?", bookingID).
		Order("booking_applications.created_at DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *BookingGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BookingGormRepository) GetPaymentByBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) GetPaymentForUpdate(
	ctx context.Context,
	bookingID uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("booking_id = ?", bookingID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("review_already_exists", "Review already submitted for this booking")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetReviewByBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *BookingGormRepository) ListReviewsByPhotographer(
	ctx context.Context,
	photographerID uint,
	limit int,
	offset int,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *BookingGormRepository) GetReviewSummary(
	ctx context.Context,
	photographerID uint,
) (*dto.ReviewSummaryDTO, error) {

	var row struct {
		AvgRating    *float64
		ReviewsCount int64
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(rating) AS avg_rating, COUNT(*) AS reviews_count").
		Where("photographer_id = ?", photographerID).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &dto.ReviewSummaryDTO{
		PhotographerID: photographerID,
		AvgRating:      row.AvgRating,
		ReviewsCount:   row.ReviewsCount,
	}, nil
}

// --------------------------------------------------
// Portfolio
// --------------------------------------------------

func (r *BookingGormRepository) CountPortfolioImages(
	ctx context.Context,
	photographerID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PortfolioImage{}).
		Where("photographer_id = ?", photographerID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) CreatePortfolioImage(
	ctx context.Context,
	img *models.PortfolioImage,
) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *BookingGormRepository) GetPortfolioImage(
	ctx context.Context,
	id uint,
) (*models.PortfolioImage, error) {

	var img models.PortfolioImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *BookingGormRepository) ListPortfolioImages(
	ctx context.Context,
	photographerID uint,
) ([]models.PortfolioImage, error) {

	var imgs []models.PortfolioImage
	if err := r.db.WithContext(ctx).
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC").
		Find(&imgs).Error; err != nil {
		return nil, err
	}

	return imgs, nil
}

func (r *BookingGormRepository) DeletePortfolioImage(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.PortfolioImage{}, id).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
