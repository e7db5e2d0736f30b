package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
)

type ItemReadStore struct {
	db sqldb.DBTX
}

func NewItemReadStore(db sqldb.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

func (s *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	sql, args, err := sqldb.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build item query", err)
	}
	view, err := scanItem(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyDBError(err, "find item by id")
	}
	return view, nil
}

func (s *ItemReadStore) FindByOwner(ctx context.Context, ownerID int64, page queries.Page) ([]*queries.ItemView, error) {
	q := sqldb.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		Limit(page.Limit()).
		Offset(page.Offset())
	return s.listItems(ctx, q, "list items by owner")
}

func (s *ItemReadStore) Search(ctx context.Context, text string, page queries.Page) ([]*queries.ItemView, error) {
	pattern := "%" + text + "%"
	q := sqldb.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id ASC").
		Limit(page.Limit()).
		Offset(page.Offset())
	return s.listItems(ctx, q, "search items")
}

func (s *ItemReadStore) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*queries.ItemView, error) {
	q := sqldb.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"request_id": requestIDs}).
		OrderBy("id ASC")
	return s.listItems(ctx, q, "list items by request")
}

func (s *ItemReadStore) listItems(ctx context.Context, q squirrel.SelectBuilder, msg string) ([]*queries.ItemView, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build item list query", err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyDBError(err, msg)
	}
	defer rows.Close()
	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItem(rows)
		if err != nil {
			return nil, infra.ClassifyDBError(err, "scan item row")
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyDBError(err, "iterate item rows")
	}
	return views, nil
}

func scanItem(row interface{ Scan(...any) error }) (*queries.ItemView, error) {
	var view queries.ItemView
	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Description,
		&view.Available,
		&view.OwnerID,
		&view.RequestID,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// FindItem adapts the read model to the write side's directory port.
func (s *ItemReadStore) FindItem(ctx context.Context, id int64) (*commands.ItemSnapshot, error) {
	view, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.ItemSnapshot{ID: view.ID, Available: view.Available, OwnerID: view.OwnerID}, nil
}
