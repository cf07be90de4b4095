package payment

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

type PayInput struct {
	CallerUserID uint
	CallerRole   string

	BookingID uint
	Amount    float64
}

// ======================================================
// USE CASE
// ======================================================

// Pay records the booking's payment exactly once. A LOCKED booking
// advances to COMPLETED; a booking in any other state keeps its status,
// which allows deposits before selection.
type Pay struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewPay(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *Pay {
	return &Pay{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Pay) Execute(
	ctx context.Context,
	in PayInput,
) (*models.Payment, error) {

	var paid *models.Payment

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {

		b, err := r.GetBookingForUpdate(ctx, in.BookingID)
		if err != nil {
			return httperr.ErrNotFound("booking_not_found", "Booking not found")
		}

		var clientID *uint
		if in.CallerRole != "admin" {
			client, err := r.GetClientByUserID(ctx, in.CallerUserID)
			if err != nil {
				return httperr.ErrForbidden("client_profile_not_found", "Client profile not found")
			}
			clientID = &client.ID
		}

		if err := domain.OwnedBy(b, clientID, in.CallerRole); err != nil {
			return err
		}

		p, err := r.GetPaymentForUpdate(ctx, in.BookingID)
		if err != nil {
			// Bookings created before the companion-payment rule may
			// have no row yet; treat as unpaid.
			p = &models.Payment{
				BookingID: in.BookingID,
				Status:    string(domain.PaymentUnpaid),
			}
			if err := r.CreatePayment(ctx, p); err != nil {
				return err
			}
		}

		if domain.PaymentStatus(p.Status) == domain.PaymentPaid {
			return httperr.ErrConflict("already_paid", "Booking is already paid")
		}

		now := timezone.NowIn(uc.tz)
		p.Status = string(domain.PaymentPaid)
		p.Amount = in.Amount
		p.PaidAt = &now

		if err := r.UpdatePayment(ctx, p); err != nil {
			return err
		}

		if domain.CompleteOnPayment(b) {
			if err := r.UpdateBooking(ctx, b); err != nil {
				return err
			}
		}

		paid = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerUserID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &paid.ID,
		Metadata: map[string]any{"amount": paid.Amount},
	})

	return paid, nil
}
