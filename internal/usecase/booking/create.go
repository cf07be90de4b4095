package booking

import (
	"context"

	"github.com/lenslink/photo-marketplace/internal/audit"
	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
	"github.com/lenslink/photo-marketplace/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CallerUserID uint
	CallerRole   string

	EventDate string
	Location  string
	EventType string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.EventDate == "" {
		return nil, httperr.ErrValidation("event_date_required", "event_date required")
	}

	eventDate, err := timezone.ParseEventDate(uc.tz, in.EventDate)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_event_date", "Invalid event date")
	}

	// Admins may create unowned bookings; clients must have a profile.
	var clientID *uint
	if client, err := uc.repo.GetClientByUserID(ctx, in.CallerUserID); err == nil {
		clientID = &client.ID
	} else if in.CallerRole != "admin" {
		return nil, httperr.ErrForbidden("client_profile_not_found", "Client profile not found")
	}

	b := &models.Booking{
		ClientID:  clientID,
		EventDate: eventDate,
		Location:  in.Location,
		EventType: in.EventType,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
	}

	// Booking and its UNPAID companion payment land in one unit.
	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		if err := r.CreateBooking(ctx, b); err != nil {
			return err
		}

		return r.CreatePayment(ctx, &models.Payment{
			BookingID: b.ID,
			Amount:    0,
			Status:    string(domain.PaymentUnpaid),
		})
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerUserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
