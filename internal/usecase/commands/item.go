package commands

import (
	"context"

	"lendhub/internal/domain/item"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
)

var (
	ErrInvalidItem  = errs.New("invalid item")
	ErrItemNotOwned = errs.New("item not owned by user")
	ErrItemPersist  = errs.New("failed to persist item")
)

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (int64, error)
	Update(ctx context.Context, i *item.Item) error
	Delete(ctx context.Context, id int64) error
}

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemInput is a patch; nil fields are left untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, in CreateItemInput) (*queries.ItemView, error)
	// Update rejects non-owners with a not-found-shaped error so the patch
	// endpoint does not reveal which items exist.
	Update(ctx context.Context, actorID, itemID int64, in UpdateItemInput) (*queries.ItemView, error)
	Delete(ctx context.Context, itemID int64) error
}

type itemCommandsImpl struct {
	repo  ItemRepository
	items queries.ItemReadStore
	users UserDirectory
}

func NewItemCommands(repo ItemRepository, items queries.ItemReadStore, users UserDirectory) ItemCommands {
	return &itemCommandsImpl{repo: repo, items: items, users: users}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID int64, in CreateItemInput) (*queries.ItemView, error) {
	if _, err := c.users.FindUser(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrItemPersist)
	}
	it, err := item.NewItem(in.Name, in.Description, in.Available, ownerID, in.RequestID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItem)
	}
	id, err := c.repo.Create(ctx, it)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrItemPersist)
	}
	return c.read(ctx, id)
}

func (c *itemCommandsImpl) Update(ctx context.Context, actorID, itemID int64, in UpdateItemInput) (*queries.ItemView, error) {
	view, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrItemPersist)
	}
	it := item.ReconstructItem(view.ID, view.Name, view.Description, view.Available, view.OwnerID, view.RequestID)
	if !it.IsOwnedBy(actorID) {
		return nil, ErrItemNotOwned
	}
	if in.Name != nil {
		if err := it.Rename(*in.Name); err != nil {
			return nil, errs.Mark(err, ErrInvalidItem)
		}
	}
	if in.Description != nil {
		if err := it.Describe(*in.Description); err != nil {
			return nil, errs.Mark(err, ErrInvalidItem)
		}
	}
	if in.Available != nil {
		it.SetAvailable(*in.Available)
	}
	if err := c.repo.Update(ctx, it); err != nil {
		return nil, errs.Mark(err, ErrItemPersist)
	}
	return c.read(ctx, itemID)
}

func (c *itemCommandsImpl) Delete(ctx context.Context, itemID int64) error {
	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrItemNotFound
		}
		return errs.Mark(err, ErrItemPersist)
	}
	if err := c.repo.Delete(ctx, itemID); err != nil {
		return errs.Mark(err, ErrItemPersist)
	}
	return nil
}

func (c *itemCommandsImpl) read(ctx context.Context, id int64) (*queries.ItemView, error) {
	view, err := c.items.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrItemPersist)
	}
	return view, nil
}
