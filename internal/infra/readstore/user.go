package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
)

type UserReadStore struct {
	db sqldb.DBTX
}

func NewUserReadStore(db sqldb.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	sql, args, err := sqldb.Select("id", "name", "email").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build user query", err)
	}
	var view queries.UserView
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&view.ID, &view.Name, &view.Email); err != nil {
		return nil, infra.ClassifyDBError(err, "find user by id")
	}
	return &view, nil
}

func (s *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	sql, args, err := sqldb.Select("id", "name", "email").
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build user list query", err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyDBError(err, "list users")
	}
	defer rows.Close()
	views := make([]*queries.UserView, 0)
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email); err != nil {
			return nil, infra.ClassifyDBError(err, "scan user row")
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyDBError(err, "iterate user rows")
	}
	return views, nil
}

func (s *UserReadStore) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	inner := sqldb.Select("1").
		From("users").
		Where(squirrel.Eq{"email": email})
	if excludeID != 0 {
		inner = inner.Where(squirrel.NotEq{"id": excludeID})
	}
	sql, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "build email query", err)
	}
	var taken bool
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		return false, infra.ClassifyDBError(err, "check email")
	}
	return taken, nil
}

// FindUser adapts the read model to the write side's directory port.
func (s *UserReadStore) FindUser(ctx context.Context, id int64) (*commands.UserSnapshot, error) {
	view, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.UserSnapshot{ID: view.ID, Name: view.Name, Email: view.Email}, nil
}
