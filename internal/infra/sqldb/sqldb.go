package sqldb

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so stores
// run unchanged inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Builder is the statement builder for Postgres placeholders ($1, $2, ...).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return Builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return Builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return Builder.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return Builder.Delete(table)
}
