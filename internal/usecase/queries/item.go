package queries

import (
	"context"
	"time"

	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
)

var (
	ErrItemNotFound = errs.New("item not found")
	ErrItemQuery    = errs.New("item query failed")
)

type ItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"-"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// EnrichedItemView carries the booking refs only when the viewer owns the
// item; comments are attached for everyone.
type EnrichedItemView struct {
	ItemView
	LastBooking *BookingRef    `json:"lastBooking,omitempty"`
	NextBooking *BookingRef    `json:"nextBooking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	// FindByOwner returns the owner's items ordered by id ascending.
	FindByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error)
	// Search matches name or description case-insensitively among available
	// items only.
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*ItemView, error)
}

type CommentReadStore interface {
	FindByID(ctx context.Context, id int64) (*CommentView, error)
	// FindByItemID returns comments ordered by creation time descending.
	FindByItemID(ctx context.Context, itemID int64) ([]*CommentView, error)
}

type ItemQueries interface {
	// GetByID enriches the item with comments, plus last/next bookings when
	// the viewer is the owner.
	GetByID(ctx context.Context, viewerID, itemID int64) (*EnrichedItemView, error)
	// ListByOwner enriches every item; the list is only reachable by its
	// owner so the booking refs are always attached.
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*EnrichedItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, bookings: bookings, comments: comments, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID int64) (*EnrichedItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrItemQuery)
	}
	return q.enrich(ctx, view, viewerID == view.OwnerID)
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*EnrichedItemView, error) {
	views, err := q.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errs.Mark(err, ErrItemQuery)
	}
	enriched := make([]*EnrichedItemView, 0, len(views))
	for _, view := range views {
		ev, err := q.enrich(ctx, view, true)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, ev)
	}
	return enriched, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemView, error) {
	// Blank search returns an empty list rather than everything.
	if text == "" {
		return []*ItemView{}, nil
	}
	views, err := q.items.Search(ctx, text, page)
	if err != nil {
		return nil, errs.Mark(err, ErrItemQuery)
	}
	return views, nil
}

func (q *itemQueriesImpl) enrich(ctx context.Context, view *ItemView, asOwner bool) (*EnrichedItemView, error) {
	comments, err := q.comments.FindByItemID(ctx, view.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrItemQuery)
	}
	if comments == nil {
		comments = []*CommentView{}
	}
	ev := &EnrichedItemView{ItemView: *view, Comments: comments}
	if !asOwner {
		return ev, nil
	}
	now := q.clock.Now()
	if ev.LastBooking, err = q.bookings.FindLastForItem(ctx, view.ID, now); err != nil {
		return nil, errs.Mark(err, ErrItemQuery)
	}
	if ev.NextBooking, err = q.bookings.FindNextForItem(ctx, view.ID, now); err != nil {
		return nil, errs.Mark(err, ErrItemQuery)
	}
	return ev, nil
}
