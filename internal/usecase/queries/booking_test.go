//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBookings *queriesmock.MockBookingReadStore
	mockUsers    *queriesmock.MockUserReadStore
	clock        *clock.MockClock
	queries      queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewBookingQueries(s.mockBookings, s.mockUsers, s.clock)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "no rows", nil)
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	view := b.BuildView()

	s.Run("booker can see own booking", func() {
		s.mockBookings.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)

		got, err := s.queries.GetByID(ctx, b.BookerID, b.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), b.ID, got.ID)
	})

	s.Run("item owner can see the booking", func() {
		s.mockBookings.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)

		_, err := s.queries.GetByID(ctx, b.OwnerID, b.ID)
		assert.NoError(s.T(), err)
	})

	s.Run("anyone else sees not found", func() {
		s.mockBookings.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)

		_, err := s.queries.GetByID(ctx, 999, b.ID)
		assert.ErrorIs(s.T(), err, queries.ErrBookingNotFound)
	})

	s.Run("missing booking", func() {
		s.mockBookings.EXPECT().FindByID(gomock.Any(), b.ID).Return(nil, notFound())

		_, err := s.queries.GetByID(ctx, b.BookerID, b.ID)
		assert.ErrorIs(s.T(), err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByBooker() {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	caller := builder.NewUserBuilder().WithID(b.BookerID)
	page := queries.NewPage(0, 10)

	s.Run("success: state is parsed case-insensitively", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(caller.BuildView(), nil)
		s.mockBookings.EXPECT().
			FindByBooker(gomock.Any(), b.BookerID, booking.StateFuture, s.clock.Now(), page).
			Return([]*queries.BookingView{b.BuildView()}, nil)

		views, err := s.queries.ListByBooker(ctx, b.BookerID, "future", page)
		require.NoError(s.T(), err)
		assert.Len(s.T(), views, 1)
	})

	s.Run("unknown caller", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(nil, notFound())

		_, err := s.queries.ListByBooker(ctx, b.BookerID, "ALL", page)
		assert.ErrorIs(s.T(), err, queries.ErrUserNotFound)
	})

	s.Run("unknown state", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(caller.BuildView(), nil)

		_, err := s.queries.ListByBooker(ctx, b.BookerID, "UNSUPPORTED_STATUS", page)
		assert.ErrorIs(s.T(), err, queries.ErrUnknownState)
	})
}

func (s *BookingQueriesTestSuite) TestCanComment() {
	ctx := context.Background()
	b := builder.NewBookingBuilder()

	s.Run("completed rental allows commenting", func() {
		s.mockBookings.EXPECT().
			ExistsCompleted(gomock.Any(), b.BookerID, b.ItemID, s.clock.Now()).
			Return(true, nil)

		ok, err := s.queries.CanComment(ctx, b.BookerID, b.ItemID)
		require.NoError(s.T(), err)
		assert.True(s.T(), ok)
	})

	s.Run("no completed rental", func() {
		s.mockBookings.EXPECT().
			ExistsCompleted(gomock.Any(), b.BookerID, b.ItemID, s.clock.Now()).
			Return(false, nil)

		ok, err := s.queries.CanComment(ctx, b.BookerID, b.ItemID)
		require.NoError(s.T(), err)
		assert.False(s.T(), ok)
	})

	s.Run("store failure surfaces the query error", func() {
		s.mockBookings.EXPECT().
			ExistsCompleted(gomock.Any(), b.BookerID, b.ItemID, s.clock.Now()).
			Return(false, infra.WrapRepoErr(infra.KindDBFailure, "connection reset", nil))

		_, err := s.queries.CanComment(ctx, b.BookerID, b.ItemID)
		assert.ErrorIs(s.T(), err, queries.ErrBookingQuery)
	})
}

func (s *BookingQueriesTestSuite) TestListByOwner() {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	owner := builder.NewUserBuilder().WithID(b.OwnerID)
	page := queries.NewPage(2, 5)

	s.Run("success: passes the owner filter through", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.OwnerID).Return(owner.BuildView(), nil)
		s.mockBookings.EXPECT().
			FindByOwner(gomock.Any(), b.OwnerID, booking.StateWaiting, s.clock.Now(), page).
			Return([]*queries.BookingView{b.BuildView()}, nil)

		views, err := s.queries.ListByOwner(ctx, b.OwnerID, "WAITING", page)
		require.NoError(s.T(), err)
		assert.Len(s.T(), views, 1)
	})

	s.Run("unknown owner", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.OwnerID).Return(nil, notFound())

		_, err := s.queries.ListByOwner(ctx, b.OwnerID, "ALL", page)
		assert.ErrorIs(s.T(), err, queries.ErrUserNotFound)
	})
}
