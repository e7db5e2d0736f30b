package commands

import (
	"context"

	"lendhub/internal/domain/user"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrInvalidUser  = errs.New("invalid user")
	ErrEmailExists  = errs.New("email is already in use")
	ErrUserPersist  = errs.New("failed to persist user")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int64) error
}

type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput is a patch; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (*queries.UserView, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*queries.UserView, error)
	Delete(ctx context.Context, id int64) error
}

type userCommandsImpl struct {
	repo  UserRepository
	users queries.UserReadStore
}

func NewUserCommands(repo UserRepository, users queries.UserReadStore) UserCommands {
	return &userCommandsImpl{repo: repo, users: users}
}

func (c *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (*queries.UserView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}
	u, err := user.NewUser(in.Name, email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}
	if err := c.checkEmailFree(ctx, email.Value(), 0); err != nil {
		return nil, err
	}
	id, err := c.repo.Create(ctx, u)
	if err != nil {
		// The unique index on email is the authoritative check; the read
		// above only makes the common case fail fast.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, errs.Mark(err, ErrUserPersist)
	}
	return c.read(ctx, id)
}

func (c *userCommandsImpl) Update(ctx context.Context, id int64, in UpdateUserInput) (*queries.UserView, error) {
	view, err := c.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrUserPersist)
	}
	email, err := user.NewEmail(view.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrUserPersist)
	}
	u := user.ReconstructUser(view.ID, view.Name, email)
	if in.Name != nil {
		if err := u.Rename(*in.Name); err != nil {
			return nil, errs.Mark(err, ErrInvalidUser)
		}
	}
	if in.Email != nil && *in.Email != view.Email {
		next, err := user.NewEmail(*in.Email)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidUser)
		}
		if err := c.checkEmailFree(ctx, next.Value(), id); err != nil {
			return nil, err
		}
		u.ChangeEmail(next)
	}
	if err := c.repo.Update(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, errs.Mark(err, ErrUserPersist)
	}
	return c.read(ctx, id)
}

func (c *userCommandsImpl) Delete(ctx context.Context, id int64) error {
	if _, err := c.users.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrUserPersist)
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrUserPersist)
	}
	return nil
}

func (c *userCommandsImpl) checkEmailFree(ctx context.Context, email string, excludeID int64) error {
	taken, err := c.users.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return errs.Mark(err, ErrUserPersist)
	}
	if taken {
		return ErrEmailExists
	}
	return nil
}

func (c *userCommandsImpl) read(ctx context.Context, id int64) (*queries.UserView, error) {
	view, err := c.users.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrUserPersist)
	}
	return view, nil
}
