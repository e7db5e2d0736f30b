//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/usecase/commands"
	"lendhub/tests/common/builder"
	commandsmock "lendhub/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *commandsmock.MockBookingRepository
	mockRead  *commandsmock.MockBookingReader
	mockItems *commandsmock.MockItemDirectory
	mockUsers *commandsmock.MockUserDirectory
	commands  commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockRead = commandsmock.NewMockBookingReader(s.mockCtrl)
	s.mockItems = commandsmock.NewMockItemDirectory(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserDirectory(s.mockCtrl)
	s.commands = commands.NewBookingCommands(s.mockRepo, s.mockRead, s.mockItems, s.mockUsers)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "no rows", nil)
}

func (s *BookingCommandsTestSuite) input(b *builder.BookingBuilder) commands.CreateBookingInput {
	return commands.CreateBookingInput{ItemID: b.ItemID, Start: b.Start, End: b.End}
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	item := builder.NewItemBuilder().WithID(b.ItemID).WithOwnerID(b.OwnerID)
	booker := builder.NewUserBuilder().WithID(b.BookerID)

	s.Run("success: persists a waiting booking and returns the view", func() {
		s.mockItems.EXPECT().FindItem(gomock.Any(), b.ItemID).Return(item.BuildSnapshot(), nil)
		s.mockUsers.EXPECT().FindUser(gomock.Any(), b.BookerID).Return(booker.BuildSnapshot(), nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, created *booking.Booking) (int64, error) {
				s.Equal(booking.StatusWaiting, created.Status())
				s.Equal(b.ItemID, created.ItemID())
				s.Equal(b.BookerID, created.BookerID())
				return b.ID, nil
			})
		s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		view, err := s.commands.Create(ctx, b.BookerID, s.input(b))
		require.NoError(s.T(), err)
		assert.Equal(s.T(), b.ID, view.ID)
		assert.Equal(s.T(), booking.StatusWaiting, view.Status)
	})

	s.Run("unknown item", func() {
		s.mockItems.EXPECT().FindItem(gomock.Any(), b.ItemID).Return(nil, notFound())

		_, err := s.commands.Create(ctx, b.BookerID, s.input(b))
		assert.ErrorIs(s.T(), err, commands.ErrItemNotFound)
	})

	s.Run("unknown booker", func() {
		s.mockItems.EXPECT().FindItem(gomock.Any(), b.ItemID).Return(item.BuildSnapshot(), nil)
		s.mockUsers.EXPECT().FindUser(gomock.Any(), b.BookerID).Return(nil, notFound())

		_, err := s.commands.Create(ctx, b.BookerID, s.input(b))
		assert.ErrorIs(s.T(), err, commands.ErrUserNotFound)
	})

	s.Run("unavailable item", func() {
		unavailable := builder.NewItemBuilder().WithID(b.ItemID).WithOwnerID(b.OwnerID).AsUnavailable()
		s.mockItems.EXPECT().FindItem(gomock.Any(), b.ItemID).Return(unavailable.BuildSnapshot(), nil)
		s.mockUsers.EXPECT().FindUser(gomock.Any(), b.BookerID).Return(booker.BuildSnapshot(), nil)

		_, err := s.commands.Create(ctx, b.BookerID, s.input(b))
		assert.ErrorIs(s.T(), err, commands.ErrItemUnavailable)
	})

	s.Run("owner booking own item", func() {
		s.mockItems.EXPECT().FindItem(gomock.Any(), b.ItemID).Return(item.BuildSnapshot(), nil)
		s.mockUsers.EXPECT().FindUser(gomock.Any(), b.OwnerID).Return(builder.NewUserBuilder().WithID(b.OwnerID).BuildSnapshot(), nil)

		_, err := s.commands.Create(ctx, b.OwnerID, s.input(b))
		assert.ErrorIs(s.T(), err, commands.ErrOwnItem)
	})

	s.Run("end before start", func() {
		bad := builder.NewBookingBuilder().WithPeriod(b.End, b.Start)
		s.mockItems.EXPECT().FindItem(gomock.Any(), bad.ItemID).Return(item.BuildSnapshot(), nil)
		s.mockUsers.EXPECT().FindUser(gomock.Any(), bad.BookerID).Return(booker.BuildSnapshot(), nil)

		_, err := s.commands.Create(ctx, bad.BookerID, s.input(bad))
		assert.ErrorIs(s.T(), err, commands.ErrInvalidPeriod)
		assert.ErrorIs(s.T(), err, booking.ErrStartAfterEnd)
	})

	s.Run("zero-length period", func() {
		bad := builder.NewBookingBuilder().WithPeriod(b.Start, b.Start)
		s.mockItems.EXPECT().FindItem(gomock.Any(), bad.ItemID).Return(item.BuildSnapshot(), nil)
		s.mockUsers.EXPECT().FindUser(gomock.Any(), bad.BookerID).Return(booker.BuildSnapshot(), nil)

		_, err := s.commands.Create(ctx, bad.BookerID, s.input(bad))
		assert.ErrorIs(s.T(), err, commands.ErrInvalidPeriod)
		assert.ErrorIs(s.T(), err, booking.ErrStartEqualsEnd)
	})
}

func (s *BookingCommandsTestSuite) TestSetApproval() {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	waiting := b.BuildView()

	s.Run("success: owner approves", func() {
		approved := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildView()
		gomock.InOrder(
			s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(waiting, nil),
			s.mockRepo.EXPECT().UpdateStatusIfWaiting(gomock.Any(), b.ID, booking.StatusApproved).Return(true, nil),
			s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(approved, nil),
		)

		view, err := s.commands.SetApproval(ctx, b.OwnerID, b.ID, true)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), booking.StatusApproved, view.Status)
	})

	s.Run("success: owner rejects", func() {
		rejected := builder.NewBookingBuilder().WithStatus(booking.StatusRejected).BuildView()
		gomock.InOrder(
			s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(waiting, nil),
			s.mockRepo.EXPECT().UpdateStatusIfWaiting(gomock.Any(), b.ID, booking.StatusRejected).Return(true, nil),
			s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(rejected, nil),
		)

		view, err := s.commands.SetApproval(ctx, b.OwnerID, b.ID, false)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), booking.StatusRejected, view.Status)
	})

	s.Run("unknown booking", func() {
		s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(nil, notFound())

		_, err := s.commands.SetApproval(ctx, b.OwnerID, b.ID, true)
		assert.ErrorIs(s.T(), err, commands.ErrBookingNotFound)
	})

	s.Run("booker approving own request looks like a missing booking", func() {
		s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(waiting, nil)

		_, err := s.commands.SetApproval(ctx, b.BookerID, b.ID, true)
		assert.ErrorIs(s.T(), err, commands.ErrBookingNotFound)
	})

	s.Run("third party is rejected as non-owner", func() {
		s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(waiting, nil)

		_, err := s.commands.SetApproval(ctx, 999, b.ID, true)
		assert.ErrorIs(s.T(), err, commands.ErrNotItemOwner)
	})

	s.Run("already decided", func() {
		decided := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildView()
		s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(decided, nil)

		_, err := s.commands.SetApproval(ctx, b.OwnerID, b.ID, true)
		assert.ErrorIs(s.T(), err, commands.ErrAlreadyDecided)
	})

	s.Run("concurrent decision loses the compare-and-set", func() {
		gomock.InOrder(
			s.mockRead.EXPECT().FindByID(gomock.Any(), b.ID).Return(waiting, nil),
			s.mockRepo.EXPECT().UpdateStatusIfWaiting(gomock.Any(), b.ID, booking.StatusApproved).Return(false, nil),
		)

		_, err := s.commands.SetApproval(ctx, b.OwnerID, b.ID, true)
		assert.ErrorIs(s.T(), err, commands.ErrAlreadyDecided)
	})
}
