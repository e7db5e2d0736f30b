//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/pkg/clock"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockItems    *queriesmock.MockItemReadStore
	mockBookings *queriesmock.MockBookingReadStore
	mockComments *queriesmock.MockCommentReadStore
	clock        *clock.MockClock
	queries      queries.ItemQueries
}

func (s *ItemQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockItems = queriesmock.NewMockItemReadStore(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockComments = queriesmock.NewMockCommentReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewItemQueries(s.mockItems, s.mockBookings, s.mockComments, s.clock)
}

func (s *ItemQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemQueriesSuite(t *testing.T) {
	suite.Run(t, new(ItemQueriesTestSuite))
}

func (s *ItemQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	item := builder.NewItemBuilder()
	now := s.clock.Now()
	last := &queries.BookingRef{ID: 1, BookerID: 200, Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour)}
	next := &queries.BookingRef{ID: 2, BookerID: 201, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)}
	comments := []*queries.CommentView{{ID: 7, Text: "solid", AuthorName: "Alice", Created: now}}

	s.Run("owner sees bookings and comments", func() {
		s.mockItems.EXPECT().FindByID(gomock.Any(), item.ID).Return(item.BuildView(), nil)
		s.mockComments.EXPECT().FindByItemID(gomock.Any(), item.ID).Return(comments, nil)
		s.mockBookings.EXPECT().FindLastForItem(gomock.Any(), item.ID, now).Return(last, nil)
		s.mockBookings.EXPECT().FindNextForItem(gomock.Any(), item.ID, now).Return(next, nil)

		view, err := s.queries.GetByID(ctx, item.OwnerID, item.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), last, view.LastBooking)
		assert.Equal(s.T(), next, view.NextBooking)
		assert.Len(s.T(), view.Comments, 1)
	})

	s.Run("non-owner sees comments but no bookings", func() {
		s.mockItems.EXPECT().FindByID(gomock.Any(), item.ID).Return(item.BuildView(), nil)
		s.mockComments.EXPECT().FindByItemID(gomock.Any(), item.ID).Return(comments, nil)

		view, err := s.queries.GetByID(ctx, 999, item.ID)
		require.NoError(s.T(), err)
		assert.Nil(s.T(), view.LastBooking)
		assert.Nil(s.T(), view.NextBooking)
		assert.Len(s.T(), view.Comments, 1)
	})

	s.Run("owner of an unbooked item gets nil refs", func() {
		s.mockItems.EXPECT().FindByID(gomock.Any(), item.ID).Return(item.BuildView(), nil)
		s.mockComments.EXPECT().FindByItemID(gomock.Any(), item.ID).Return(nil, nil)
		s.mockBookings.EXPECT().FindLastForItem(gomock.Any(), item.ID, now).Return(nil, nil)
		s.mockBookings.EXPECT().FindNextForItem(gomock.Any(), item.ID, now).Return(nil, nil)

		view, err := s.queries.GetByID(ctx, item.OwnerID, item.ID)
		require.NoError(s.T(), err)
		assert.Nil(s.T(), view.LastBooking)
		assert.Nil(s.T(), view.NextBooking)
		assert.NotNil(s.T(), view.Comments)
		assert.Empty(s.T(), view.Comments)
	})

	s.Run("missing item", func() {
		s.mockItems.EXPECT().FindByID(gomock.Any(), item.ID).Return(nil, notFound())

		_, err := s.queries.GetByID(ctx, item.OwnerID, item.ID)
		assert.ErrorIs(s.T(), err, queries.ErrItemNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestSearch() {
	ctx := context.Background()
	page := queries.NewPage(0, 10)

	s.Run("blank text short-circuits to an empty list", func() {
		views, err := s.queries.Search(ctx, "", page)
		require.NoError(s.T(), err)
		assert.Empty(s.T(), views)
	})

	s.Run("non-blank text hits the store", func() {
		item := builder.NewItemBuilder()
		s.mockItems.EXPECT().Search(gomock.Any(), "drill", page).
			Return([]*queries.ItemView{item.BuildView()}, nil)

		views, err := s.queries.Search(ctx, "drill", page)
		require.NoError(s.T(), err)
		assert.Len(s.T(), views, 1)
	})
}
