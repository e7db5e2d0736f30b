package commands

import (
	"context"

	"lendhub/internal/domain/request"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
)

var (
	ErrInvalidRequest  = errs.New("invalid request")
	ErrRequestNotFound = errs.New("request not found")
	ErrRequestPersist  = errs.New("failed to persist request")
)

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) (int64, error)
}

type RequestCommands interface {
	Create(ctx context.Context, requesterID int64, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	repo     RequestRepository
	requests queries.RequestReadStore
	users    UserDirectory
	clock    clock.Clock
}

func NewRequestCommands(repo RequestRepository, requests queries.RequestReadStore, users UserDirectory, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{repo: repo, requests: requests, users: users, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, requesterID int64, description string) (*queries.RequestView, error) {
	if _, err := c.users.FindUser(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrRequestPersist)
	}
	r, err := request.NewRequest(description, requesterID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}
	id, err := c.repo.Create(ctx, r)
	if err != nil {
		return nil, errs.Mark(err, ErrRequestPersist)
	}
	view, err := c.requests.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrRequestPersist)
	}
	// A fresh request has no answering items yet.
	view.Items = []*queries.ItemView{}
	return view, nil
}
