package booking

import (
	"context"

	"github.com/lenslink/photo-marketplace/internal/dto"
	"github.com/lenslink/photo-marketplace/internal/models"
)

// ListFilter narrows the public booking listing. Zero values mean "no
// filter"; Page/PageSize are normalized by the usecase.
type ListFilter struct {
	Status    string
	Location  string
	EventType string
	Query     string
	Page      int
	PageSize  int
}

type Repository interface {
	// -------- Profiles --------
	GetClientByUserID(
		ctx context.Context,
		userID uint,
	) (*models.ClientProfile, error)

	GetPhotographerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.PhotographerProfile, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// GetBookingForUpdate locks the booking row for the duration of the
	// surrounding transaction. Only meaningful inside Transact.
	GetBookingForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, int64, error)

	// -------- Application --------
	CreateApplication(
		ctx context.Context,
		app *models.BookingApplication,
	) error

	GetApplicationForUpdate(
		ctx context.Context,
		id uint,
	) (*models.BookingApplication, error)

	UpdateApplication(
		ctx context.Context,
		app *models.BookingApplication,
	) error

	// RejectPendingSiblings settles every other PENDING application on
	// the booking to REJECTED. Applications already settled are left
	// untouched.
	RejectPendingSiblings(
		ctx context.Context,
		bookingID uint,
		acceptedID uint,
	) error

	ListApplications(
		ctx context.Context,
		bookingID uint,
	) ([]dto.ApplicationListDTO, error)

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPaymentByBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Payment, error)

	GetPaymentForUpdate(
		ctx context.Context,
		bookingID uint,
	) (*models.Payment, error)

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// -------- Review --------
	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	GetReviewByBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Review, error)

	ListReviewsByPhotographer(
		ctx context.Context,
		photographerID uint,
		limit int,
		offset int,
	) ([]models.Review, error)

	GetReviewSummary(
		ctx context.Context,
		photographerID uint,
	) (*dto.ReviewSummaryDTO, error)

	// -------- Portfolio --------
	CountPortfolioImages(
		ctx context.Context,
		photographerID uint,
	) (int64, error)

	CreatePortfolioImage(
		ctx context.Context,
		img *models.PortfolioImage,
	) error

	GetPortfolioImage(
		ctx context.Context,
		id uint,
	) (*models.PortfolioImage, error)

	ListPortfolioImages(
		ctx context.Context,
		photographerID uint,
	) ([]models.PortfolioImage, error)

	DeletePortfolioImage(
		ctx context.Context,
		id uint,
	) error

	// -------- Transaction --------
	// Transact runs fn against a repository bound to one database
	// transaction. Returning an error rolls everything back. The
	// selection and payment operations run their read-check-write
	// sequences through it.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
