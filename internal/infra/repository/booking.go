package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
)

type BookingRepository struct {
	db sqldb.DBTX
}

func NewBookingRepository(db sqldb.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	sql, args, err := sqldb.Insert("bookings").
		Columns("item_id", "booker_id", "start_date", "end_date", "status").
		Values(b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), string(b.Status())).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "build booking insert", err)
	}
	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.ClassifyDBError(err, "insert booking")
	}
	return id, nil
}

// UpdateStatusIfWaiting is a compare-and-set; concurrent decisions race on
// the WHERE clause and exactly one wins.
func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status booking.Status) (bool, error) {
	sql, args, err := sqldb.Update("bookings").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(booking.StatusWaiting)}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "build booking status update", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, infra.ClassifyDBError(err, "update booking status")
	}
	return tag.RowsAffected() == 1, nil
}
