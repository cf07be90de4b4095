package booking

import "github.com/lenslink/photo-marketplace/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusInReview  Status = "IN_REVIEW"
	StatusLocked    Status = "LOCKED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ===============================
// Application Status
// ===============================

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

// ===============================
// Validations
// ===============================

// CanSelect defines whether a booking can go through the selection
// transaction. Only OPEN and IN_REVIEW bookings are selectable.
func CanSelect(current Status) error {
	if current != StatusOpen && current != StatusInReview {
		return httperr.ErrInvalidState("booking_not_selectable", "Booking not selectable")
	}
	return nil
}

// CanCancel defines whether a booking can be cancelled. Once locked
// to a photographer the booking can no longer be cancelled here.
func CanCancel(current Status) error {
	if current != StatusOpen && current != StatusInReview {
		return httperr.ErrInvalidState("booking_not_cancellable", "Booking cannot be cancelled")
	}
	return nil
}

// CanReceiveApplications guards the application boundary: only OPEN
// bookings take new applications.
func CanReceiveApplications(current Status) error {
	if current != StatusOpen {
		return httperr.ErrInvalidState("booking_not_open", "Booking is not open for applications")
	}
	return nil
}

func InitialStatus() Status {
	return StatusOpen
}
