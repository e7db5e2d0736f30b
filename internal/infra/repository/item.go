package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/domain/item"
	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
)

type ItemRepository struct {
	db sqldb.DBTX
}

func NewItemRepository(db sqldb.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (int64, error) {
	sql, args, err := sqldb.Insert("items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(i.Name(), i.Description(), i.Available(), i.OwnerID(), i.RequestID()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "build item insert", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.ClassifyDBError(err, "insert item")
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	sql, args, err := sqldb.Update("items").
		Set("name", i.Name()).
		Set("description", i.Description()).
		Set("available", i.Available()).
		Where(squirrel.Eq{"id": i.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "build item update", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.ClassifyDBError(err, "update item")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "item not found", nil)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := sqldb.Delete("items").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "build item delete", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.ClassifyDBError(err, "delete item")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "item not found", nil)
	}
	return nil
}
