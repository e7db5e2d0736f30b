package repository

import (
	"context"

	"lendhub/internal/domain/comment"
	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
)

type CommentRepository struct {
	db sqldb.DBTX
}

func NewCommentRepository(db sqldb.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	sql, args, err := sqldb.Insert("comments").
		Columns("text", "item_id", "author_id", "created").
		Values(c.Text(), c.ItemID(), c.AuthorID(), c.Created()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "build comment insert", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.ClassifyDBError(err, "insert comment")
	}
	return id, nil
}
