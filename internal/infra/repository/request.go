package repository

import (
	"context"

	"lendhub/internal/domain/request"
	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
)

type RequestRepository struct {
	db sqldb.DBTX
}

func NewRequestRepository(db sqldb.DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) (int64, error) {
	sql, args, err := sqldb.Insert("requests").
		Columns("description", "requester_id", "created").
		Values(req.Description(), req.RequesterID(), req.Created()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "build request insert", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.ClassifyDBError(err, "insert request")
	}
	return id, nil
}
