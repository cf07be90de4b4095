package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/testutil"
)

func TestCreateBooking_Success(t *testing.T) {
	repo := testutil.NewMemRepo()
	client := repo.SeedClient(10)

	uc := NewCreateBooking(repo, nil, "UTC")

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CallerUserID: 10,
		CallerRole:   "client",
		EventDate:    "2026-10-01",
		Location:     "São Paulo",
		EventType:    "wedding",
		Notes:        "outdoor ceremony",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusOpen), b.Status)
	require.NotNil(t, b.ClientID)
	assert.Equal(t, client.ID, *b.ClientID)
	assert.Equal(t, "2026-10-01", b.EventDate.Format("2006-01-02"))

	// companion payment created UNPAID in the same unit
	p, err := repo.GetPaymentByBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentUnpaid), p.Status)
	assert.Equal(t, float64(0), p.Amount)
}

func TestCreateBooking_EventDateRequired(t *testing.T) {
	repo := testutil.NewMemRepo()
	repo.SeedClient(10)

	uc := NewCreateBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CallerUserID: 10,
		CallerRole:   "client",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "event_date_required"))
}

func TestCreateBooking_InvalidEventDate(t *testing.T) {
	repo := testutil.NewMemRepo()
	repo.SeedClient(10)

	uc := NewCreateBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CallerUserID: 10,
		CallerRole:   "client",
		EventDate:    "10/01/2026",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_event_date"))
}

func TestCreateBooking_ClientProfileRequired(t *testing.T) {
	repo := testutil.NewMemRepo()

	uc := NewCreateBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CallerUserID: 10,
		CallerRole:   "client",
		EventDate:    "2026-10-01",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "client_profile_not_found"))
}

func TestCreateBooking_AdminMayCreateUnowned(t *testing.T) {
	repo := testutil.NewMemRepo()

	uc := NewCreateBooking(repo, nil, "UTC")

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CallerUserID: 1,
		CallerRole:   "admin",
		EventDate:    "2026-10-01",
	})
	require.NoError(t, err)
	assert.Nil(t, b.ClientID)
}
