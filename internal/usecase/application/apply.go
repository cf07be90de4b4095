package application

import (
	"context"

	"github.com/lenslink/photo-marketplace/internal/audit"
	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// Apply records a photographer's bid on a booking. The registry itself
// is status-agnostic; this boundary rejects applications to bookings
// that are no longer open.
type Apply struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApply(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Apply {
	return &Apply{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Apply) Execute(
	ctx context.Context,
	callerUserID uint,
	callerRole string,
	bookingID uint,
	adminPhotographerID uint,
) (*models.BookingApplication, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	if err := domain.CanReceiveApplications(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	var photographerID uint
	if photographer, err := uc.repo.GetPhotographerByUserID(ctx, callerUserID); err == nil {
		photographerID = photographer.ID
	} else if callerRole == "admin" && adminPhotographerID != 0 {
		// Admins apply on behalf of a photographer.
		photographerID = adminPhotographerID
	} else {
		return nil, httperr.ErrForbidden("photographer_profile_not_found", "Photographer profile not found")
	}

	app := &models.BookingApplication{
		BookingID:      b.ID,
		PhotographerID: photographerID,
		Status:         string(domain.ApplicationPending),
	}

	// Duplicate (booking, photographer) pairs surface as a conflict
	// from the unique index.
	if err := uc.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerUserID,
		Action:   "application_submitted",
		Entity:   "booking_application",
		EntityID: &app.ID,
	})

	return app, nil
}
