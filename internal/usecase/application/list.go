package application

import (
	"context"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/dto"
	"github.com/lenslink/photo-marketplace/internal/httperr"
)

type ListApplications struct {
	repo domain.Repository
}

func NewListApplications(repo domain.Repository) *ListApplications {
	return &ListApplications{repo: repo}
}

// Execute returns the booking's applications, newest first, with the
// photographer's name and portfolio size denormalized for the client's
// review screen. Only the owning client or an admin may call it.
func (uc *ListApplications) Execute(
	ctx context.Context,
	callerUserID uint,
	callerRole string,
	bookingID uint,
) ([]dto.ApplicationListDTO, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	var clientID *uint
	if callerRole != "admin" {
		client, err := uc.repo.GetClientByUserID(ctx, callerUserID)
		if err != nil {
			return nil, httperr.ErrForbidden("client_profile_not_found", "Client profile not found")
		}
		clientID = &client.ID
	}

	if err := domain.OwnedBy(b, clientID, callerRole); err != nil {
		return nil, err
	}

	return uc.repo.ListApplications(ctx, bookingID)
}
