//go:build unit || e2e

package builder

import (
	"time"

	"lendhub/internal/domain/booking"
	reqdto "lendhub/internal/handler/dto/request"
	"lendhub/internal/usecase/queries"
)

type BookingBuilder struct {
	ID       int64
	ItemID   int64
	ItemName string
	OwnerID  int64
	BookerID int64
	Booker   string
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:       1,
		ItemID:   10,
		ItemName: "cordless drill",
		OwnerID:  100,
		BookerID: 200,
		Booker:   "Alice",
		Start:    base.Add(24 * time.Hour),
		End:      base.Add(48 * time.Hour),
		Status:   booking.StatusWaiting,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ItemID, b.BookerID, period), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		ItemID:     b.ItemID,
		ItemName:   b.ItemName,
		OwnerID:    b.OwnerID,
		BookerID:   b.BookerID,
		BookerName: b.Booker,
		Start:      b.Start,
		End:        b.End,
		Status:     b.Status,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(itemID int64) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithOwnerID(ownerID int64) *BookingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID int64) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
