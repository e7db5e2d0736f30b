package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
	"lendhub/internal/usecase/queries"
)

type RequestReadStore struct {
	db sqldb.DBTX
}

func NewRequestReadStore(db sqldb.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (s *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	sql, args, err := sqldb.Select("id", "description", "created").
		From("requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build request query", err)
	}
	var view queries.RequestView
	err = s.db.QueryRow(ctx, sql, args...).Scan(&view.ID, &view.Description, &view.Created)
	if err != nil {
		return nil, infra.ClassifyDBError(err, "find request by id")
	}
	return &view, nil
}

func (s *RequestReadStore) FindByRequester(ctx context.Context, requesterID int64) ([]*queries.RequestView, error) {
	q := sqldb.Select("id", "description", "created").
		From("requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created DESC")
	return s.list(ctx, q, "list own requests")
}

func (s *RequestReadStore) FindOthers(ctx context.Context, requesterID int64, page queries.Page) ([]*queries.RequestView, error) {
	q := sqldb.Select("id", "description", "created").
		From("requests").
		Where(squirrel.NotEq{"requester_id": requesterID}).
		OrderBy("created DESC").
		Limit(page.Limit()).
		Offset(page.Offset())
	return s.list(ctx, q, "list other requests")
}

func (s *RequestReadStore) list(ctx context.Context, q squirrel.SelectBuilder, msg string) ([]*queries.RequestView, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build request list query", err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyDBError(err, msg)
	}
	defer rows.Close()
	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		var view queries.RequestView
		if err := rows.Scan(&view.ID, &view.Description, &view.Created); err != nil {
			return nil, infra.ClassifyDBError(err, "scan request row")
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyDBError(err, "iterate request rows")
	}
	return views, nil
}
