package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
	"lendhub/internal/usecase/queries"
)

type CommentReadStore struct {
	db sqldb.DBTX
}

func NewCommentReadStore(db sqldb.DBTX) *CommentReadStore {
	return &CommentReadStore{db: db}
}

func commentSelect() squirrel.SelectBuilder {
	return sqldb.Select("c.id", "c.text", "u.name AS author_name", "c.created").
		From("comments c").
		Join("users u ON u.id = c.author_id")
}

func (s *CommentReadStore) FindByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	sql, args, err := commentSelect().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build comment query", err)
	}
	var view queries.CommentView
	err = s.db.QueryRow(ctx, sql, args...).Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created)
	if err != nil {
		return nil, infra.ClassifyDBError(err, "find comment by id")
	}
	return &view, nil
}

func (s *CommentReadStore) FindByItemID(ctx context.Context, itemID int64) ([]*queries.CommentView, error) {
	sql, args, err := commentSelect().
		Where(squirrel.Eq{"c.item_id": itemID}).
		OrderBy("c.created DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build comment list query", err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyDBError(err, "list comments")
	}
	defer rows.Close()
	views := make([]*queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.ClassifyDBError(err, "scan comment row")
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyDBError(err, "iterate comment rows")
	}
	return views, nil
}
