package payment

import (
	"context"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

type GetPayment struct {
	repo domain.Repository
}

func NewGetPayment(repo domain.Repository) *GetPayment {
	return &GetPayment{repo: repo}
}

// Execute returns the booking's payment, or a default UNPAID zero
// record when nothing is stored yet, so callers never special-case an
// unpaid booking's absence.
func (uc *GetPayment) Execute(
	ctx context.Context,
	callerUserID uint,
	callerRole string,
	bookingID uint,
) (*models.Payment, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	var clientID *uint
	if client, err := uc.repo.GetClientByUserID(ctx, callerUserID); err == nil {
		clientID = &client.ID
	}

	var photographerID *uint
	if photographer, err := uc.repo.GetPhotographerByUserID(ctx, callerUserID); err == nil {
		photographerID = &photographer.ID
	}

	if err := domain.VisibleTo(b, clientID, photographerID, callerRole); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPaymentByBooking(ctx, bookingID)
	if err != nil {
		return &models.Payment{
			BookingID: bookingID,
			Amount:    0,
			Status:    string(domain.PaymentUnpaid),
		}, nil
	}

	return p, nil
}
