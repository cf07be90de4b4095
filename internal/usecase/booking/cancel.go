package booking

import (
	"context"

	"github.com/lenslink/photo-marketplace/internal/audit"
	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
	"github.com/lenslink/photo-marketplace/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	callerUserID uint,
	callerRole string,
	bookingID uint,
) (*models.Booking, error) {

	var b *models.Booking

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {

		var err error
		b, err = r.GetBookingForUpdate(ctx, bookingID)
		if err != nil {
			return httperr.ErrNotFound("booking_not_found", "Booking not found")
		}

		var clientID *uint
		if callerRole != "admin" {
			client, err := r.GetClientByUserID(ctx, callerUserID)
			if err != nil {
				return httperr.ErrForbidden("client_profile_not_found", "Client profile not found")
			}
			clientID = &client.ID
		}

		if err := domain.OwnedBy(b, clientID, callerRole); err != nil {
			return err
		}

		if err := domain.Cancel(b, timezone.NowIn(uc.tz)); err != nil {
			return err
		}

		return r.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerUserID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
