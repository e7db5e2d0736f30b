package commands

import (
	"context"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrItemUnavailable = errs.New("item is not available for booking")
	ErrOwnItem         = errs.New("owner cannot book own item")
	ErrInvalidPeriod   = errs.New("invalid booking period")
	ErrNotItemOwner    = errs.New("only the item owner can decide a booking")
	ErrAlreadyDecided  = errs.New("booking is already decided")
	ErrBookingPersist  = errs.New("failed to persist booking")
)

// ItemSnapshot is the slice of item state the write side needs.
type ItemSnapshot struct {
	ID        int64
	Available bool
	OwnerID   int64
}

// UserSnapshot is the slice of user state the write side needs.
type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemDirectory interface {
	FindItem(ctx context.Context, id int64) (*ItemSnapshot, error)
}

type UserDirectory interface {
	FindUser(ctx context.Context, id int64) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	// UpdateStatusIfWaiting applies the decision only when the row is still
	// WAITING; false means another decision won.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status booking.Status) (bool, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id int64) (*queries.BookingView, error)
}

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, in CreateBookingInput) (*queries.BookingView, error)
	// SetApproval moves a WAITING booking to APPROVED or REJECTED. The booker
	// is told the booking does not exist; a third party that happens to know
	// the id gets a validation error.
	SetApproval(ctx context.Context, actorID, bookingID int64, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	repo   BookingRepository
	reader BookingReader
	items  ItemDirectory
	users  UserDirectory
}

func NewBookingCommands(repo BookingRepository, reader BookingReader, items ItemDirectory, users UserDirectory) BookingCommands {
	return &bookingCommandsImpl{repo: repo, reader: reader, items: items, users: users}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID int64, in CreateBookingInput) (*queries.BookingView, error) {
	item, err := c.items.FindItem(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	if _, err := c.users.FindUser(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrOwnItem
	}
	period, err := booking.NewPeriod(in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}
	b := booking.NewBooking(in.ItemID, bookerID, period)
	id, err := c.repo.Create(ctx, b)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	view, err := c.reader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	return view, nil
}

func (c *bookingCommandsImpl) SetApproval(ctx context.Context, actorID, bookingID int64, approved bool) (*queries.BookingView, error) {
	view, err := c.reader.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	if actorID == view.BookerID {
		return nil, ErrBookingNotFound
	}
	if actorID != view.OwnerID {
		return nil, ErrNotItemOwner
	}
	if view.Status != booking.StatusWaiting {
		return nil, ErrAlreadyDecided
	}
	status := booking.StatusRejected
	if approved {
		status = booking.StatusApproved
	}
	ok, err := c.repo.UpdateStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	if !ok {
		return nil, ErrAlreadyDecided
	}
	updated, err := c.reader.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingPersist)
	}
	return updated, nil
}
