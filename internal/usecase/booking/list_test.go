package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lenslink/photo-marketplace/internal/domain/booking"
	"github.com/lenslink/photo-marketplace/internal/models"
	"github.com/lenslink/photo-marketplace/internal/testutil"
)

func day(n int) time.Time {
	return time.Date(2026, 10, n, 0, 0, 0, 0, time.UTC)
}

func TestListBookings_FiltersAndOrder(t *testing.T) {
	repo := testutil.NewMemRepo()

	repo.SeedBooking(models.Booking{EventDate: day(3), Location: "Rio", Status: string(domain.StatusOpen)})
	repo.SeedBooking(models.Booking{EventDate: day(1), Location: "Rio", Status: string(domain.StatusOpen)})
	repo.SeedBooking(models.Booking{EventDate: day(2), Location: "Recife", Status: string(domain.StatusOpen)})
	repo.SeedBooking(models.Booking{EventDate: day(4), Location: "Rio", Status: string(domain.StatusLocked)})

	uc := NewListBookings(repo)

	rows, total, err := uc.Execute(context.Background(), domain.ListFilter{
		Status:   string(domain.StatusOpen),
		Location: "rio",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	// soonest event first
	assert.Equal(t, day(1), rows[0].EventDate)
	assert.Equal(t, day(3), rows[1].EventDate)
}

func TestListBookings_PageSizeClamped(t *testing.T) {
	repo := testutil.NewMemRepo()
	for i := 1; i <= 15; i++ {
		repo.SeedBooking(models.Booking{EventDate: day(i), Status: string(domain.StatusOpen)})
	}

	uc := NewListBookings(repo)

	// zero values normalize to page 1, size 10
	rows, total, err := uc.Execute(context.Background(), domain.ListFilter{
		Status: string(domain.StatusOpen),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, rows, 10)

	// oversized requests clamp to 100
	rows, _, err = uc.Execute(context.Background(), domain.ListFilter{
		Status:   string(domain.StatusOpen),
		Page:     1,
		PageSize: 5000,
	})
	require.NoError(t, err)
	assert.Len(t, rows, 15)

	// past the last page comes back empty, total intact
	rows, total, err = uc.Execute(context.Background(), domain.ListFilter{
		Status:   string(domain.StatusOpen),
		Page:     9,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int64(15), total)
}
