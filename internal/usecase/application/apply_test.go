package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
	"github.com/lenslink/photo-marketplace/internal/testutil"
)

func TestApply_Success(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	photographer := repo.SeedPhotographer(20, "Ana")
	b := repo.SeedBooking(models.Booking{ClientID: &client.ID})

	uc := NewApply(repo, nil)

	app, err := uc.Execute(context.Background(), 20, "photographer", b.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, b.ID, app.BookingID)
	assert.Equal(t, photographer.ID, app.PhotographerID)
	assert.Equal(t, string(domain.ApplicationPending), app.Status)
}

func TestApply_DuplicateConflicts(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	repo.SeedPhotographer(20, "Ana")
	b := repo.SeedBooking(models.Booking{ClientID: &client.ID})

	uc := NewApply(repo, nil)

	_, err := uc.Execute(context.Background(), 20, "photographer", b.ID, 0)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 20, "photographer", b.ID, 0)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "already_applied"))
}

func TestApply_BookingNotOpen(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	repo.SeedPhotographer(20, "Ana")

	for _, status := range []domain.Status{
		domain.StatusLocked,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		b := repo.SeedBooking(models.Booking{
			ClientID: &client.ID,
			Status:   string(status),
		})

		uc := NewApply(repo, nil)

		_, err := uc.Execute(context.Background(), 20, "photographer", b.ID, 0)
		require.Error(t, err, "status %s", status)
		assert.True(t, httperr.IsBusiness(err, "booking_not_open"))
	}
}

func TestApply_BookingNotFound(t *testing.T) {
	repo := testutil.NewMemRepo()
	repo.SeedPhotographer(20, "Ana")

	uc := NewApply(repo, nil)

	_, err := uc.Execute(context.Background(), 20, "photographer", 9999, 0)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestApply_AdminOnBehalfOfPhotographer(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	photographer := repo.SeedPhotographer(20, "Ana")
	b := repo.SeedBooking(models.Booking{ClientID: &client.ID})

	uc := NewApply(repo, nil)

	app, err := uc.Execute(context.Background(), 1, "admin", b.ID, photographer.ID)
	require.NoError(t, err)
	assert.Equal(t, photographer.ID, app.PhotographerID)

	// admin without a target photographer is refused
	_, err = uc.Execute(context.Background(), 1, "admin", b.ID, 0)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "photographer_profile_not_found"))
}

func TestListApplications_OwnerOnly(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	repo.SeedClient(11)
	photographer := repo.SeedPhotographer(20, "Ana")
	b := repo.SeedBooking(models.Booking{ClientID: &client.ID})

	repo.SeedApplication(models.BookingApplication{
		BookingID:      b.ID,
		PhotographerID: photographer.ID,
	})

	uc := NewListApplications(repo)

	rows, err := uc.Execute(context.Background(), 10, "client", b.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].PhotographerName)
	assert.Equal(t, string(domain.ApplicationPending), rows[0].Status)

	_, err = uc.Execute(context.Background(), 11, "client", b.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}
