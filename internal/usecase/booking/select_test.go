package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
	"github.com/lenslink/photo-marketplace/internal/testutil"
)

type selectFixture struct {
	repo   *testutil.MemRepo
	client *models.ClientProfile

	booking *models.Booking
	appA    *models.BookingApplication
	appB    *models.BookingApplication
}

func newSelectFixture(t *testing.T) *selectFixture {
	t.Helper()

	repo := testutil.NewMemRepo()

	client := repo.SeedClient(10)
	photoA := repo.SeedPhotographer(20, "Ana")
	photoB := repo.SeedPhotographer(21, "Bruno")

	b := repo.SeedBooking(models.Booking{
		ClientID: &client.ID,
		Status:   string(domain.StatusOpen),
	})

	appA := repo.SeedApplication(models.BookingApplication{
		BookingID:      b.ID,
		PhotographerID: photoA.ID,
	})
	appB := repo.SeedApplication(models.BookingApplication{
		BookingID:      b.ID,
		PhotographerID: photoB.ID,
	})

	return &selectFixture{
		repo:    repo,
		client:  client,
		booking: b,
		appA:    appA,
		appB:    appB,
	}
}

func TestSelectApplication_Success(t *testing.T) {
	fx := newSelectFixture(t)
	uc := NewSelectApplication(fx.repo, nil)

	result, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  10,
		CallerRole:    "client",
		BookingID:     fx.booking.ID,
		ApplicationID: fx.appA.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, fx.booking.ID, result.BookingID)
	assert.Equal(t, string(domain.StatusLocked), result.Status)
	assert.Equal(t, fx.appA.PhotographerID, result.PhotographerID)
	assert.Equal(t, fx.appA.ID, result.SelectedApplicationID)

	b, err := fx.repo.GetBookingByID(context.Background(), fx.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusLocked), b.Status)
	require.NotNil(t, b.PhotographerID)
	assert.Equal(t, fx.appA.PhotographerID, *b.PhotographerID)

	accepted, err := fx.repo.GetApplicationForUpdate(context.Background(), fx.appA.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ApplicationAccepted), accepted.Status)

	rejected, err := fx.repo.GetApplicationForUpdate(context.Background(), fx.appB.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ApplicationRejected), rejected.Status)
}

func TestSelectApplication_BookingNotFound(t *testing.T) {
	fx := newSelectFixture(t)
	uc := NewSelectApplication(fx.repo, nil)

	_, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  10,
		CallerRole:    "client",
		BookingID:     9999,
		ApplicationID: fx.appA.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestSelectApplication_NotOwner(t *testing.T) {
	fx := newSelectFixture(t)
	fx.repo.SeedClient(11)
	uc := NewSelectApplication(fx.repo, nil)

	_, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  11,
		CallerRole:    "client",
		BookingID:     fx.booking.ID,
		ApplicationID: fx.appA.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_booking_owner"))

	// nothing moved
	b, _ := fx.repo.GetBookingByID(context.Background(), fx.booking.ID)
	assert.Equal(t, string(domain.StatusOpen), b.Status)
}

func TestSelectApplication_AdminBypassesOwnership(t *testing.T) {
	fx := newSelectFixture(t)
	uc := NewSelectApplication(fx.repo, nil)

	_, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  99,
		CallerRole:    "admin",
		BookingID:     fx.booking.ID,
		ApplicationID: fx.appA.ID,
	})
	require.NoError(t, err)
}

func TestSelectApplication_BookingNotSelectable(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusLocked,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		fx := newSelectFixture(t)
		fx.booking.Status = string(status)
		require.NoError(t, fx.repo.UpdateBooking(context.Background(), fx.booking))

		uc := NewSelectApplication(fx.repo, nil)

		_, err := uc.Execute(context.Background(), SelectApplicationInput{
			CallerUserID:  10,
			CallerRole:    "client",
			BookingID:     fx.booking.ID,
			ApplicationID: fx.appA.ID,
		})
		require.Error(t, err, "status %s", status)
		assert.True(t, httperr.IsBusiness(err, "booking_not_selectable"))
	}
}

func TestSelectApplication_ApplicationNotFound(t *testing.T) {
	fx := newSelectFixture(t)
	uc := NewSelectApplication(fx.repo, nil)

	_, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  10,
		CallerRole:    "client",
		BookingID:     fx.booking.ID,
		ApplicationID: 9999,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "application_not_found"))
}

func TestSelectApplication_ApplicationBookingMismatch(t *testing.T) {
	fx := newSelectFixture(t)

	other := fx.repo.SeedBooking(models.Booking{ClientID: &fx.client.ID})
	foreign := fx.repo.SeedApplication(models.BookingApplication{
		BookingID:      other.ID,
		PhotographerID: fx.appA.PhotographerID,
	})

	uc := NewSelectApplication(fx.repo, nil)

	_, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  10,
		CallerRole:    "client",
		BookingID:     fx.booking.ID,
		ApplicationID: foreign.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "application_booking_mismatch"))
}

func TestSelectApplication_ApplicationNotPending(t *testing.T) {
	fx := newSelectFixture(t)

	fx.appA.Status = string(domain.ApplicationRejected)
	require.NoError(t, fx.repo.UpdateApplication(context.Background(), fx.appA))

	uc := NewSelectApplication(fx.repo, nil)

	_, err := uc.Execute(context.Background(), SelectApplicationInput{
		CallerUserID:  10,
		CallerRole:    "client",
		BookingID:     fx.booking.ID,
		ApplicationID: fx.appA.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "application_not_pending"))
}

// Two clients racing to select different applications on the same
// booking must produce exactly one winner; the loser observes the
// booking already locked.
func TestSelectApplication_ConcurrentSingleWinner(t *testing.T) {
	fx := newSelectFixture(t)
	uc := NewSelectApplication(fx.repo, nil)

	errs := make([]error, 2)
	var wg sync.WaitGroup

	for i, appID := range []uint{fx.appA.ID, fx.appB.ID} {
		wg.Add(1)
		go func(i int, appID uint) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), SelectApplicationInput{
				CallerUserID:  10,
				CallerRole:    "client",
				BookingID:     fx.booking.ID,
				ApplicationID: appID,
			})
		}(i, appID)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		losses++
		assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)

	b, err := fx.repo.GetBookingByID(context.Background(), fx.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusLocked), b.Status)

	var accepted int
	for _, appID := range []uint{fx.appA.ID, fx.appB.ID} {
		app, err := fx.repo.GetApplicationForUpdate(context.Background(), appID)
		require.NoError(t, err)
		if app.Status == string(domain.ApplicationAccepted) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}
