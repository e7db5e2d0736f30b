package queries

import (
	"context"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrUnknownState    = errs.New("unknown state")
	ErrBookingQuery    = errs.New("booking query failed")
)

// BookingView is the read model returned to callers; OwnerID is resolved
// through the item on every read so authorization never trusts the request.
type BookingView struct {
	ID         int64          `json:"id"`
	ItemID     int64          `json:"itemId"`
	ItemName   string         `json:"itemName"`
	OwnerID    int64          `json:"-"`
	BookerID   int64          `json:"bookerId"`
	BookerName string         `json:"bookerName"`
	Start      time.Time      `json:"start"`
	End        time.Time      `json:"end"`
	Status     booking.Status `json:"status"`
}

// BookingRef is the short form attached to item views (last/next booking).
type BookingRef struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	// FindByBooker and FindByOwner push the state predicate down to the store,
	// sorted by start descending.
	FindByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, page Page) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, page Page) ([]*BookingView, error)
	// FindLastForItem returns the latest booking started before now that was
	// not rejected; nil when the item has none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	// FindNextForItem returns the earliest approved booking starting after
	// now; nil when the item has none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	// ExistsCompleted reports whether the booker has an approved booking of
	// the item that already ended.
	ExistsCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type BookingQueries interface {
	// GetByID is visible only to the booker and the item owner; everyone else
	// gets the not-found error, matching the write side's obscurity policy.
	GetByID(ctx context.Context, callerID, bookingID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, page Page) ([]*BookingView, error)
	CanComment(ctx context.Context, bookerID, itemID int64) (bool, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, callerID, bookingID int64) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	if callerID != view.BookerID && callerID != view.OwnerID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state string, page Page) ([]*BookingView, error) {
	st, err := q.resolve(ctx, bookerID, state)
	if err != nil {
		return nil, err
	}
	views, err := q.bookings.FindByBooker(ctx, bookerID, st, q.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, state string, page Page) ([]*BookingView, error) {
	st, err := q.resolve(ctx, ownerID, state)
	if err != nil {
		return nil, err
	}
	views, err := q.bookings.FindByOwner(ctx, ownerID, st, q.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	return views, nil
}

func (q *bookingQueriesImpl) CanComment(ctx context.Context, bookerID, itemID int64) (bool, error) {
	ok, err := q.bookings.ExistsCompleted(ctx, bookerID, itemID, q.clock.Now())
	if err != nil {
		return false, errs.Mark(err, ErrBookingQuery)
	}
	return ok, nil
}

// resolve checks the caller exists and parses the state filter. Both lists
// share the rule: unknown state is a validation failure, unknown caller a
// not-found one.
func (q *bookingQueriesImpl) resolve(ctx context.Context, callerID int64, state string) (booking.State, error) {
	if _, err := q.users.FindByID(ctx, callerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", errs.Mark(err, ErrBookingQuery)
	}
	st, err := booking.ParseState(state)
	if err != nil {
		return "", errs.Mark(err, ErrUnknownState)
	}
	return st, nil
}
