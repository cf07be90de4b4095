package booking

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

func TestCancelBooking_Success(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	b := repo.SeedBooking(models.Booking{ClientID: &client.ID})

	uc := NewCancelBooking(repo, nil, "UTC")

	cancelled, err := uc.Execute(context.Background(), 10, "client", b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	stored, err := repo.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestCancelBooking_LockedBookingStaysPut(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	b := repo.SeedBooking(models.Booking{
		ClientID: &client.ID,
		Status:   string(domain.StatusLocked),
	})

	uc := NewCancelBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), 10, "client", b.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_cancellable"))

	stored, _ := repo.GetBookingByID(context.Background(), b.ID)
	assert.Equal(t, string(domain.StatusLocked), stored.Status)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)
	repo.SeedClient(11)
	b := repo.SeedBooking(models.Booking{ClientID: &client.ID})

	uc := NewCancelBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), 11, "client", b.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := testutil.NewMemRepo()
	repo.SeedClient(10)

	uc := NewCancelBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), 10, "client", 9999)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
