package queries

import (
	"context"
	"time"

	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
)

var (
	ErrRequestNotFound = errs.New("request not found")
	ErrRequestQuery    = errs.New("request query failed")
)

// RequestView bundles the post with the items created in answer to it.
type RequestView struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Created     time.Time   `json:"created"`
	Items       []*ItemView `json:"items"`
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	// FindByRequester returns the user's own requests, newest first.
	FindByRequester(ctx context.Context, requesterID int64) ([]*RequestView, error)
	// FindOthers returns everyone else's requests, newest first.
	FindOthers(ctx context.Context, requesterID int64, page Page) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, callerID, requestID int64) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID int64) ([]*RequestView, error)
	ListOthers(ctx context.Context, requesterID int64, page Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, items: items, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, callerID, requestID int64) (*RequestView, error) {
	if err := q.checkUser(ctx, callerID); err != nil {
		return nil, err
	}
	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrRequestQuery)
	}
	if err := q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID int64) ([]*RequestView, error) {
	if err := q.checkUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.requests.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, ErrRequestQuery)
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID int64, page Page) ([]*RequestView, error) {
	if err := q.checkUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.requests.FindOthers(ctx, requesterID, page)
	if err != nil {
		return nil, errs.Mark(err, ErrRequestQuery)
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) checkUser(ctx context.Context, userID int64) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrRequestQuery)
	}
	return nil
}

// attachItems resolves the answering items for a batch of requests with a
// single store round trip.
func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	ids := make([]int64, 0, len(views))
	byID := make(map[int64]*RequestView, len(views))
	for _, view := range views {
		view.Items = []*ItemView{}
		ids = append(ids, view.ID)
		byID[view.ID] = view
	}
	if len(ids) == 0 {
		return nil
	}
	items, err := q.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return errs.Mark(err, ErrRequestQuery)
	}
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		if view, ok := byID[*it.RequestID]; ok {
			view.Items = append(view.Items, it)
		}
	}
	return nil
}
