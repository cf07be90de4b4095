package booking

import (
	"time"

	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Lock commits the booking to the photographer of the chosen
// application. Callers must have validated selectability first.
func Lock(b *models.Booking, photographerID uint) {
	b.PhotographerID = &photographerID
	b.Status = string(StatusLocked)
}

// CompleteOnPayment advances a LOCKED booking to COMPLETED. Payment on
// a booking in any other state records without a transition.
func CompleteOnPayment(b *models.Booking) bool {
	if Status(b.Status) != StatusLocked {
		return false
	}
	b.Status = string(StatusCompleted)
	return true
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// ===============================
// Ownership
// ===============================

// OwnedBy checks the owning-client-or-admin capability once per
// operation, so handlers and usecases fail uniformly.
func OwnedBy(b *models.Booking, clientID *uint, role string) error {
	if role == "admin" {
		return nil
	}
	if b.ClientID != nil && clientID != nil && *b.ClientID == *clientID {
		return nil
	}
	return httperr.ErrForbidden("not_booking_owner", "You do not own this booking")
}

// VisibleTo additionally admits the assigned photographer, used by the
// payment and review read paths.
func VisibleTo(b *models.Booking, clientID *uint, photographerID *uint, role string) error {
	if err := OwnedBy(b, clientID, role); err == nil {
		return nil
	}
	if b.PhotographerID != nil && photographerID != nil && *b.PhotographerID == *photographerID {
		return nil
	}
	return httperr.ErrForbidden("not_booking_participant", "You are not a participant of this booking")
}
