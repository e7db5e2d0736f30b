package booking

import (
	"errors"
	"time"
)

var (
	ErrAlreadyDecided = errors.New("booking is not waiting for approval")
)

// Booking is a reservation of an item by a booker for a period. The item's
// owner is resolved through the item, never stored on the booking itself.
type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	period   Period
	status   Status
}

// NewBooking builds a not-yet-persisted booking. Every new booking starts
// WAITING; cross-entity checks (item availability, ownership) belong to the
// lifecycle command that resolves the directories.
func NewBooking(itemID, bookerID int64, period Period) *Booking {
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(id, itemID, bookerID int64, period Period, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   status,
	}
}

// Decide moves WAITING to APPROVED or REJECTED. Terminal states never
// transition again.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// CompletedBy reports whether the booking counts as a finished rental for the
// given booker at time now: approved and already over.
func (b *Booking) CompletedBy(bookerID int64, now time.Time) bool {
	return b.bookerID == bookerID && b.status == StatusApproved && b.period.EndedBefore(now)
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Period() Period  { return b.period }
func (b *Booking) Status() Status  { return b.status }
