package queries

import (
	"context"

	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserQuery    = errs.New("user query failed")
)

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
	// EmailTaken reports whether another user (any user when excludeID is 0)
	// already holds the address.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	view, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrUserQuery)
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	views, err := q.users.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUserQuery)
	}
	return views, nil
}
