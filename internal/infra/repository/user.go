package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/domain/user"
	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
)

type UserRepository struct {
	db sqldb.DBTX
}

func NewUserRepository(db sqldb.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	sql, args, err := sqldb.Insert("users").
		Columns("name", "email").
		Values(u.Name(), u.Email().Value()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "build user insert", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.ClassifyDBError(err, "insert user")
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	sql, args, err := sqldb.Update("users").
		Set("name", u.Name()).
		Set("email", u.Email().Value()).
		Where(squirrel.Eq{"id": u.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "build user update", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.ClassifyDBError(err, "update user")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := sqldb.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "build user delete", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.ClassifyDBError(err, "delete user")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}
