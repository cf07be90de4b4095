package booking

import (
	"context"

	"github.com/lenslink/photo-marketplace/internal/audit"
	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SelectApplicationInput struct {
	CallerUserID uint
	CallerRole   string

	BookingID     uint
	ApplicationID uint
}

type SelectApplicationResult struct {
	BookingID             uint   `json:"booking_id"`
	Status                string `json:"status"`
	PhotographerID        uint   `json:"photographer_id"`
	SelectedApplicationID uint   `json:"selected_application_id"`
}

// ======================================================
// USE CASE
// ======================================================

// SelectApplication promotes exactly one application to ACCEPTED and
// locks the booking to its photographer. Every precondition is checked
// inside the transaction, against rows locked FOR UPDATE, so two
// concurrent selections on the same booking serialize: the loser sees
// either a non-selectable booking or a settled application.
type SelectApplication struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSelectApplication(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SelectApplication {
	return &SelectApplication{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SelectApplication) Execute(
	ctx context.Context,
	in SelectApplicationInput,
) (*SelectApplicationResult, error) {

	var result SelectApplicationResult

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

		if err := domain.CanSelect(domain.Status(b.Status)); err != nil {
			return err
		}

		app, err := r.GetApplicationForUpdate(ctx, in.ApplicationID)
		if err != nil {
			return httperr.ErrNotFound("application_not_found", "Application not found")
		}

		if app.BookingID != b.ID {
			return httperr.ErrValidation(
				"application_booking_mismatch",
				"Application does not belong to this booking",
			)
		}

		if domain.ApplicationStatus(app.Status) != domain.ApplicationPending {
			return httperr.ErrInvalidState("application_not_pending", "Application is not pending")
		}

		domain.Lock(b, app.PhotographerID)
		if err := r.UpdateBooking(ctx, b); err != nil {
			return err
		}

		app.Status = string(domain.ApplicationAccepted)
		if err := r.UpdateApplication(ctx, app); err != nil {
			return err
		}

		if err := r.RejectPendingSiblings(ctx, b.ID, app.ID); err != nil {
			return err
		}

		result = SelectApplicationResult{
			BookingID:             b.ID,
			Status:                b.Status,
			PhotographerID:        app.PhotographerID,
			SelectedApplicationID: app.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerUserID,
		Action:   "photographer_selected",
		Entity:   "booking",
		EntityID: &result.BookingID,
		Metadata: map[string]any{
			"application_id":  result.SelectedApplicationID,
			"photographer_id": result.PhotographerID,
		},
	})

	return &result, nil
}
