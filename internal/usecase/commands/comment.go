package commands

import (
	"context"
	"time"

	"lendhub/internal/domain/comment"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
)

var (
	ErrInvalidComment    = errs.New("invalid comment")
	ErrCommentNotAllowed = errs.New("user did not rent the item, or the rental is not finished")
	ErrCommentPersist    = errs.New("failed to persist comment")
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (int64, error)
}

// CompletedRentals answers whether an author ever finished an approved
// booking of the item, which is the only gate on commenting.
type CompletedRentals interface {
	ExistsCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type CommentCommands interface {
	Create(ctx context.Context, authorID, itemID int64, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	repo     CommentRepository
	comments queries.CommentReadStore
	rentals  CompletedRentals
	items    ItemDirectory
	users    UserDirectory
	clock    clock.Clock
}

func NewCommentCommands(
	repo CommentRepository,
	comments queries.CommentReadStore,
	rentals CompletedRentals,
	items ItemDirectory,
	users UserDirectory,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		repo:     repo,
		comments: comments,
		rentals:  rentals,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

func (c *commentCommandsImpl) Create(ctx context.Context, authorID, itemID int64, text string) (*queries.CommentView, error) {
	if _, err := c.users.FindUser(ctx, authorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrCommentPersist)
	}
	if _, err := c.items.FindItem(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrCommentPersist)
	}
	now := c.clock.Now()
	ok, err := c.rentals.ExistsCompleted(ctx, authorID, itemID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrCommentPersist)
	}
	if !ok {
		return nil, ErrCommentNotAllowed
	}
	cm, err := comment.NewComment(text, itemID, authorID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidComment)
	}
	id, err := c.repo.Create(ctx, cm)
	if err != nil {
		return nil, errs.Mark(err, ErrCommentPersist)
	}
	view, err := c.comments.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrCommentPersist)
	}
	return view, nil
}
