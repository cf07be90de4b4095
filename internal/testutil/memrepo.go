// Package testutil provides an in-memory domain repository so usecase
// behavior, including the selection transaction, can be exercised
// without a database.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/dto"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

// MemRepo keeps every table as a map of value copies. Transact holds
// txMu for the whole callback, which serializes transactions the way
// row locks do on Postgres, and restores a snapshot on error so
// rollback semantics hold too.
type MemRepo struct {
	mu   sync.Mutex
	txMu sync.Mutex

	nextID uint

	clients       map[uint]models.ClientProfile
	photographers map[uint]models.PhotographerProfile
	userNames     map[uint]string

	bookings     map[uint]models.Booking
	applications map[uint]models.BookingApplication
	payments     map[uint]models.Payment
	reviews      map[uint]models.Review
	portfolio    map[uint]models.PortfolioImage
}

var _ domain.Repository = (*MemRepo)(nil)

func NewMemRepo() *MemRepo {
	return &MemRepo{
		clients:       map[uint]models.ClientProfile{},
		photographers: map[uint]models.PhotographerProfile{},
		userNames:     map[uint]string{},
		bookings:      map[uint]models.Booking{},
		applications:  map[uint]models.BookingApplication{},
		payments:      map[uint]models.Payment{},
		reviews:       map[uint]models.Review{},
		portfolio:     map[uint]models.PortfolioImage{},
	}
}

func (m *MemRepo) id() uint {
	m.nextID++
	return m.nextID
}

// ======================================================
// SEED HELPERS
// ======================================================

func (m *MemRepo) SeedClient(userID uint) *models.ClientProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := models.ClientProfile{ID: m.id(), UserID: userID}
	m.clients[c.ID] = c
	return &c
}

func (m *MemRepo) SeedPhotographer(userID uint, name string) *models.PhotographerProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := models.PhotographerProfile{ID: m.id(), UserID: userID}
	m.photographers[p.ID] = p
	m.userNames[p.ID] = name
	return &p
}

func (m *MemRepo) SeedBooking(b models.Booking) *models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b.ID == 0 {
		b.ID = m.id()
	}
	if b.Status == "" {
		b.Status = string(domain.StatusOpen)
	}
	m.bookings[b.ID] = b
	return &b
}

func (m *MemRepo) SeedApplication(app models.BookingApplication) *models.BookingApplication {
	m.mu.Lock()
	defer m.mu.Unlock()

	if app.ID == 0 {
		app.ID = m.id()
	}
	if app.Status == "" {
		app.Status = string(domain.ApplicationPending)
	}
	m.applications[app.ID] = app
	return &app
}

func (m *MemRepo) SeedPayment(p models.Payment) *models.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == 0 {
		p.ID = m.id()
	}
	if p.Status == "" {
		p.Status = string(domain.PaymentUnpaid)
	}
	m.payments[p.ID] = p
	return &p
}

// ======================================================
// PROFILES
// ======================================================

func (m *MemRepo) GetClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.ClientProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.clients {
		if c.UserID == userID {
			cp := c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MemRepo) GetPhotographerByUserID(
	ctx context.Context,
	userID uint,
) (*models.PhotographerProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.photographers {
		if p.UserID == userID {
			pp := p
			return &pp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ======================================================
// BOOKING
// ======================================================

func (m *MemRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b.ID = m.id()
	m.bookings[b.ID] = *b
	return nil
}

func (m *MemRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (m *MemRepo) GetBookingForUpdate(ctx context.Context, id uint) (*models.Booking, error) {
	return m.GetBookingByID(ctx, id)
}

func (m *MemRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m *MemRepo) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []models.Booking
	for _, b := range m.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Location != "" && !containsFold(b.Location, filter.Location) {
			continue
		}
		if filter.EventType != "" && !containsFold(b.EventType, filter.EventType) {
			continue
		}
		if filter.Query != "" &&
			!containsFold(b.Location, filter.Query) &&
			!containsFold(b.EventType, filter.Query) &&
			!containsFold(b.Notes, filter.Query) {
			continue
		}
		matched = append(matched, b)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].EventDate.Before(matched[j].EventDate)
	})

	total := int64(len(matched))

	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []models.Booking{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ======================================================
// APPLICATION
// ======================================================

func (m *MemRepo) CreateApplication(ctx context.Context, app *models.BookingApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.applications {
		if existing.BookingID == app.BookingID && existing.PhotographerID == app.PhotographerID {
			return httperr.ErrConflict("already_applied", "Already applied to this booking")
		}
	}

	app.ID = m.id()
	m.applications[app.ID] = *app
	return nil
}

func (m *MemRepo) GetApplicationForUpdate(
	ctx context.Context,
	id uint,
) (*models.BookingApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app, ok := m.applications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &app, nil
}

func (m *MemRepo) UpdateApplication(ctx context.Context, app *models.BookingApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.applications[app.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.applications[app.ID] = *app
	return nil
}

func (m *MemRepo) RejectPendingSiblings(
	ctx context.Context,
	bookingID uint,
	acceptedID uint,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, app := range m.applications {
		if app.BookingID == bookingID &&
			app.ID != acceptedID &&
			app.Status == string(domain.ApplicationPending) {
			app.Status = string(domain.ApplicationRejected)
			m.applications[id] = app
		}
	}
	return nil
}

func (m *MemRepo) ListApplications(
	ctx context.Context,
	bookingID uint,
) ([]dto.ApplicationListDTO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []dto.ApplicationListDTO
	for _, app := range m.applications {
		if app.BookingID != bookingID {
			continue
		}

		var count int64
		for _, img := range m.portfolio {
			if img.PhotographerID == app.PhotographerID {
				count++
			}
		}

		out = append(out, dto.ApplicationListDTO{
			ApplicationID:    app.ID,
			Status:           app.Status,
			ApplicationDate:  app.CreatedAt,
			PhotographerID:   app.PhotographerID,
			PhotographerName: m.userNames[app.PhotographerID],
			PortfolioCount:   count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ApplicationDate.After(out[j].ApplicationDate)
	})
	return out, nil
}

// ======================================================
// PAYMENT
// ======================================================

func (m *MemRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.payments {
		if existing.BookingID == p.BookingID {
			return httperr.ErrConflict("payment_already_exists", "Payment already exists for this booking")
		}
	}

	p.ID = m.id()
	m.payments[p.ID] = *p
	return nil
}

func (m *MemRepo) GetPaymentByBooking(ctx context.Context, bookingID uint) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.payments {
		if p.BookingID == bookingID {
			pp := p
			return &pp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MemRepo) GetPaymentForUpdate(ctx context.Context, bookingID uint) (*models.Payment, error) {
	return m.GetPaymentByBooking(ctx, bookingID)
}

func (m *MemRepo) UpdatePayment(ctx context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payments[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.payments[p.ID] = *p
	return nil
}

// ======================================================
// REVIEW
// ======================================================

func (m *MemRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.reviews {
		if existing.BookingID == rv.BookingID {
			return httperr.ErrConflict("review_already_exists", "Review already submitted for this booking")
		}
	}

	rv.ID = m.id()
	m.reviews[rv.ID] = *rv
	return nil
}

func (m *MemRepo) GetReviewByBooking(ctx context.Context, bookingID uint) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rv := range m.reviews {
		if rv.BookingID == bookingID {
			r := rv
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MemRepo) ListReviewsByPhotographer(
	ctx context.Context,
	photographerID uint,
	limit int,
	offset int,
) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []models.Review
	for _, rv := range m.reviews {
		if rv.PhotographerID == photographerID {
			matched = append(matched, rv)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []models.Review{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *MemRepo) GetReviewSummary(
	ctx context.Context,
	photographerID uint,
) (*dto.ReviewSummaryDTO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sum, count int64
	for _, rv := range m.reviews {
		if rv.PhotographerID == photographerID {
			sum += int64(rv.Rating)
			count++
		}
	}

	out := &dto.ReviewSummaryDTO{
		PhotographerID: photographerID,
		ReviewsCount:   count,
	}
	if count > 0 {
		avg := float64(sum) / float64(count)
		out.AvgRating = &avg
	}
	return out, nil
}

// ======================================================
// PORTFOLIO
// ======================================================

func (m *MemRepo) CountPortfolioImages(ctx context.Context, photographerID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, img := range m.portfolio {
		if img.PhotographerID == photographerID {
			count++
		}
	}
	return count, nil
}

func (m *MemRepo) CreatePortfolioImage(ctx context.Context, img *models.PortfolioImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	img.ID = m.id()
	m.portfolio[img.ID] = *img
	return nil
}

func (m *MemRepo) GetPortfolioImage(ctx context.Context, id uint) (*models.PortfolioImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	img, ok := m.portfolio[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &img, nil
}

func (m *MemRepo) ListPortfolioImages(
	ctx context.Context,
	photographerID uint,
) ([]models.PortfolioImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.PortfolioImage
	for _, img := range m.portfolio {
		if img.PhotographerID == photographerID {
			out = append(out, img)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemRepo) DeletePortfolioImage(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.portfolio, id)
	return nil
}

// ======================================================
// TRANSACTION
// ======================================================

func (m *MemRepo) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snap := m.snapshot()

	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

type memSnapshot struct {
	nextID       uint
	bookings     map[uint]models.Booking
	applications map[uint]models.BookingApplication
	payments     map[uint]models.Payment
	reviews      map[uint]models.Review
	portfolio    map[uint]models.PortfolioImage
}

func (m *MemRepo) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return memSnapshot{
		nextID:       m.nextID,
		bookings:     copyMap(m.bookings),
		applications: copyMap(m.applications),
		payments:     copyMap(m.payments),
		reviews:      copyMap(m.reviews),
		portfolio:    copyMap(m.portfolio),
	}
}

func (m *MemRepo) restore(snap memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID = snap.nextID
	m.bookings = snap.bookings
	m.applications = snap.applications
	m.payments = snap.payments
	m.reviews = snap.reviews
	m.portfolio = snap.portfolio
}

func copyMap[V any](src map[uint]V) map[uint]V {
	dst := make(map[uint]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
