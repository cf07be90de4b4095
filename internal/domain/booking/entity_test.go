package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslink/photo-marketplace/internal/httperr"
	"github.com/lenslink/photo-marketplace/internal/models"
)

func TestLock(t *testing.T) {
	b := &models.Booking{ID: 1, Status: string(StatusOpen)}

	Lock(b, 42)

	assert.Equal(t, string(StatusLocked), b.Status)
	require.NotNil(t, b.PhotographerID)
	assert.Equal(t, uint(42), *b.PhotographerID)
}

func TestCompleteOnPayment(t *testing.T) {
	locked := &models.Booking{Status: string(StatusLocked)}
	assert.True(t, CompleteOnPayment(locked))
	assert.Equal(t, string(StatusCompleted), locked.Status)

	// any other status records the payment without a transition
	for _, s := range []Status{StatusOpen, StatusInReview, StatusCompleted, StatusCancelled} {
		b := &models.Booking{Status: string(s)}
		assert.False(t, CompleteOnPayment(b), "status %s", s)
		assert.Equal(t, string(s), b.Status)
	}
}

func TestCancel(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusOpen)}
	require.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)

	locked := &models.Booking{Status: string(StatusLocked)}
	err := Cancel(locked, now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_cancellable"))
	assert.Nil(t, locked.CancelledAt)
}

func TestOwnedBy(t *testing.T) {
	owner := uint(7)
	other := uint(8)
	b := &models.Booking{ClientID: &owner}

	assert.NoError(t, OwnedBy(b, &owner, "client"))
	assert.NoError(t, OwnedBy(b, nil, "admin"))

	err := OwnedBy(b, &other, "client")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	// unowned booking is admin-only
	assert.Error(t, OwnedBy(&models.Booking{}, &owner, "client"))
	assert.NoError(t, OwnedBy(&models.Booking{}, nil, "admin"))
}

func TestVisibleTo(t *testing.T) {
	owner := uint(7)
	assigned := uint(3)
	stranger := uint(9)

	b := &models.Booking{ClientID: &owner, PhotographerID: &assigned}

	assert.NoError(t, VisibleTo(b, &owner, nil, "client"))
	assert.NoError(t, VisibleTo(b, nil, &assigned, "photographer"))
	assert.NoError(t, VisibleTo(b, nil, nil, "admin"))

	err := VisibleTo(b, nil, &stranger, "photographer")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_booking_participant"))
}
