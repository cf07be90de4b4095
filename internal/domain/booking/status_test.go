package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslink/photo-marketplace/internal/httperr"
)

func TestCanSelect(t *testing.T) {
	assert.NoError(t, CanSelect(StatusOpen))
	assert.NoError(t, CanSelect(StatusInReview))

	for _, s := range []Status{StatusLocked, StatusCompleted, StatusCancelled} {
		err := CanSelect(s)
		require.Error(t, err, "status %s", s)
		assert.True(t, httperr.IsBusiness(err, "booking_not_selectable"))
		assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
		assert.EqualError(t, err, "booking_not_selectable")
	}
}

func TestCanReceiveApplications(t *testing.T) {
	assert.NoError(t, CanReceiveApplications(StatusOpen))

	for _, s := range []Status{StatusInReview, StatusLocked, StatusCompleted, StatusCancelled} {
		err := CanReceiveApplications(s)
		require.Error(t, err, "status %s", s)
		assert.True(t, httperr.IsBusiness(err, "booking_not_open"))
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusOpen))
	assert.NoError(t, CanCancel(StatusInReview))

	for _, s := range []Status{StatusLocked, StatusCompleted, StatusCancelled} {
		assert.Error(t, CanCancel(s), "status %s", s)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusOpen, InitialStatus())
}
