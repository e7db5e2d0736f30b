//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPeriod(t *testing.T, start, end time.Time) booking.Period {
	t.Helper()
	p, err := booking.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestNewBooking(t *testing.T) {
	p := newTestPeriod(t, base, base.Add(time.Hour))
	b := booking.NewBooking(10, 200, p)

	assert.Equal(t, int64(10), b.ItemID())
	assert.Equal(t, int64(200), b.BookerID())
	assert.Equal(t, booking.StatusWaiting, b.Status())
}

func TestDecide(t *testing.T) {
	p := newTestPeriod(t, base, base.Add(time.Hour))

	t.Run("approve from waiting", func(t *testing.T) {
		b := booking.NewBooking(10, 200, p)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject from waiting", func(t *testing.T) {
		b := booking.NewBooking(10, 200, p)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 10, 200, p, booking.StatusApproved)
		assert.ErrorIs(t, b.Decide(false), booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 10, 200, p, booking.StatusRejected)
		assert.ErrorIs(t, b.Decide(true), booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestCompletedBy(t *testing.T) {
	now := base
	past := newTestPeriod(t, now.Add(-2*time.Hour), now.Add(-time.Hour))
	running := newTestPeriod(t, now.Add(-time.Hour), now.Add(time.Hour))

	t.Run("approved and over counts", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 10, 200, past, booking.StatusApproved)
		assert.True(t, b.CompletedBy(200, now))
	})

	t.Run("different booker does not count", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 10, 200, past, booking.StatusApproved)
		assert.False(t, b.CompletedBy(201, now))
	})

	t.Run("still running does not count", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 10, 200, running, booking.StatusApproved)
		assert.False(t, b.CompletedBy(200, now))
	})

	t.Run("waiting does not count even when over", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 10, 200, past, booking.StatusWaiting)
		assert.False(t, b.CompletedBy(200, now))
	})
}
