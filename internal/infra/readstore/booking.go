package readstore

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/infra/sqldb"
	"lendhub/internal/usecase/queries"
)

type BookingReadStore struct {
	db sqldb.DBTX
}

func NewBookingReadStore(db sqldb.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

var bookingColumns = []string{
	"b.id",
	"b.item_id",
	"i.name AS item_name",
	"i.owner_id",
	"b.booker_id",
	"u.name AS booker_name",
	"b.start_date",
	"b.end_date",
	"b.status",
}

func bookingSelect() squirrel.SelectBuilder {
	return sqldb.Select(bookingColumns...).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

func (s *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	sql, args, err := bookingSelect().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build booking query", err)
	}
	view, err := s.scanView(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyDBError(err, "find booking by id")
	}
	return view, nil
}

func (s *BookingReadStore) FindByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	return s.list(ctx, squirrel.Eq{"b.booker_id": bookerID}, state, now, page)
}

func (s *BookingReadStore) FindByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	return s.list(ctx, squirrel.Eq{"i.owner_id": ownerID}, state, now, page)
}

func (s *BookingReadStore) list(ctx context.Context, who squirrel.Sqlizer, state booking.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	q := bookingSelect().Where(who)
	if cond := stateCondition(state, now); cond != nil {
		q = q.Where(cond)
	}
	sql, args, err := q.
		OrderBy("b.start_date DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build booking list query", err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyDBError(err, "list bookings")
	}
	defer rows.Close()
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := s.scanView(rows)
		if err != nil {
			return nil, infra.ClassifyDBError(err, "scan booking row")
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyDBError(err, "iterate booking rows")
	}
	return views, nil
}

// stateCondition is the SQL form of the state predicates; ALL means no
// filter.
func stateCondition(state booking.State, now time.Time) squirrel.Sqlizer {
	switch state {
	case booking.StateCurrent:
		return squirrel.And{
			squirrel.LtOrEq{"b.start_date": now},
			squirrel.GtOrEq{"b.end_date": now},
		}
	case booking.StatePast:
		return squirrel.Lt{"b.end_date": now}
	case booking.StateFuture:
		return squirrel.Gt{"b.start_date": now}
	case booking.StateWaiting:
		return squirrel.Eq{"b.status": string(booking.StatusWaiting)}
	case booking.StateRejected:
		return squirrel.Eq{"b.status": string(booking.StatusRejected)}
	default:
		return nil
	}
}

func (s *BookingReadStore) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*queries.BookingRef, error) {
	q := sqldb.Select("id", "booker_id", "start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Lt{"start_date": now}).
		Where(squirrel.NotEq{"status": string(booking.StatusRejected)}).
		OrderBy("start_date DESC").
		Limit(1)
	return s.findRef(ctx, q, "find last booking for item")
}

func (s *BookingReadStore) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*queries.BookingRef, error) {
	q := sqldb.Select("id", "booker_id", "start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Gt{"start_date": now}).
		Where(squirrel.Eq{"status": string(booking.StatusApproved)}).
		OrderBy("start_date ASC").
		Limit(1)
	return s.findRef(ctx, q, "find next booking for item")
}

func (s *BookingReadStore) findRef(ctx context.Context, q squirrel.SelectBuilder, msg string) (*queries.BookingRef, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "build booking ref query", err)
	}
	var ref queries.BookingRef
	err = s.db.QueryRow(ctx, sql, args...).Scan(&ref.ID, &ref.BookerID, &ref.Start, &ref.End)
	if err != nil {
		classified := infra.ClassifyDBError(err, msg)
		// Absence is a normal outcome for enrichment, not an error.
		if infra.IsKind(classified, infra.KindNotFound) {
			return nil, nil
		}
		return nil, classified
	}
	return &ref, nil
}

func (s *BookingReadStore) ExistsCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	inner := sqldb.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booker_id": bookerID}).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"status": string(booking.StatusApproved)}).
		Where(squirrel.Lt{"end_date": now})
	sql, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "build completed rental query", err)
	}
	var exists bool
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, infra.ClassifyDBError(err, "check completed rental")
	}
	return exists, nil
}

func (s *BookingReadStore) scanView(row interface{ Scan(...any) error }) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID,
		&view.ItemID,
		&view.ItemName,
		&view.OwnerID,
		&view.BookerID,
		&view.BookerName,
		&view.Start,
		&view.End,
		&view.Status,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
