//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/comment"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"
	commandsmock "lendhub/tests/mock/commands"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommentCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *commandsmock.MockCommentRepository
	mockComments *queriesmock.MockCommentReadStore
	mockRentals  *commandsmock.MockCompletedRentals
	mockItems    *commandsmock.MockItemDirectory
	mockUsers    *commandsmock.MockUserDirectory
	clock        *clock.MockClock
	commands     commands.CommentCommands
}

func (s *CommentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockCommentRepository(s.mockCtrl)
	s.mockComments = queriesmock.NewMockCommentReadStore(s.mockCtrl)
	s.mockRentals = commandsmock.NewMockCompletedRentals(s.mockCtrl)
	s.mockItems = commandsmock.NewMockItemDirectory(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserDirectory(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewCommentCommands(s.mockRepo, s.mockComments, s.mockRentals, s.mockItems, s.mockUsers, s.clock)
}

func (s *CommentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommentCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommentCommandsTestSuite))
}

func (s *CommentCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	item := builder.NewItemBuilder()
	author := builder.NewUserBuilder()
	now := s.clock.Now()

	s.Run("success: completed rental allows the comment", func() {
		s.mockUsers.EXPECT().FindUser(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		s.mockItems.EXPECT().FindItem(gomock.Any(), item.ID).Return(item.BuildSnapshot(), nil)
		s.mockRentals.EXPECT().ExistsCompleted(gomock.Any(), author.ID, item.ID, now).Return(true, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cm *comment.Comment) (int64, error) {
				s.Equal("great drill", cm.Text())
				s.Equal(now, cm.Created())
				return int64(7), nil
			})
		s.mockComments.EXPECT().FindByID(gomock.Any(), int64(7)).
			Return(&queries.CommentView{ID: 7, Text: "great drill", AuthorName: author.Name, Created: now}, nil)

		view, err := s.commands.Create(ctx, author.ID, item.ID, "great drill")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), int64(7), view.ID)
		assert.Equal(s.T(), author.Name, view.AuthorName)
	})

	s.Run("no completed rental", func() {
		s.mockUsers.EXPECT().FindUser(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		s.mockItems.EXPECT().FindItem(gomock.Any(), item.ID).Return(item.BuildSnapshot(), nil)
		s.mockRentals.EXPECT().ExistsCompleted(gomock.Any(), author.ID, item.ID, now).Return(false, nil)

		_, err := s.commands.Create(ctx, author.ID, item.ID, "great drill")
		assert.ErrorIs(s.T(), err, commands.ErrCommentNotAllowed)
	})

	s.Run("unknown author", func() {
		s.mockUsers.EXPECT().FindUser(gomock.Any(), author.ID).Return(nil, notFound())

		_, err := s.commands.Create(ctx, author.ID, item.ID, "great drill")
		assert.ErrorIs(s.T(), err, commands.ErrUserNotFound)
	})

	s.Run("unknown item", func() {
		s.mockUsers.EXPECT().FindUser(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		s.mockItems.EXPECT().FindItem(gomock.Any(), item.ID).Return(nil, notFound())

		_, err := s.commands.Create(ctx, author.ID, item.ID, "great drill")
		assert.ErrorIs(s.T(), err, commands.ErrItemNotFound)
	})

	s.Run("blank text", func() {
		s.mockUsers.EXPECT().FindUser(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		s.mockItems.EXPECT().FindItem(gomock.Any(), item.ID).Return(item.BuildSnapshot(), nil)
		s.mockRentals.EXPECT().ExistsCompleted(gomock.Any(), author.ID, item.ID, now).Return(true, nil)

		_, err := s.commands.Create(ctx, author.ID, item.ID, "   ")
		assert.ErrorIs(s.T(), err, commands.ErrInvalidComment)
		assert.ErrorIs(s.T(), err, comment.ErrEmptyText)
	})
}
