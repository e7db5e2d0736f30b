//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendhub/internal/domain/user"
	"lendhub/internal/infra"
	"lendhub/internal/usecase/commands"
	"lendhub/tests/common/builder"
	commandsmock "lendhub/tests/mock/commands"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *commandsmock.MockUserRepository
	mockUsers *queriesmock.MockUserReadStore
	commands  commands.UserCommands
}

func (s *UserCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.commands = commands.NewUserCommands(s.mockRepo, s.mockUsers)
}

func (s *UserCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserCommandsSuite(t *testing.T) {
	suite.Run(t, new(UserCommandsTestSuite))
}

func duplicateKey() error {
	return infra.WrapRepoErr(infra.KindDuplicateKey, "unique violation", nil)
}

func (s *UserCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	u := builder.NewUserBuilder()
	input := commands.CreateUserInput{Name: u.Name, Email: u.Email}

	s.Run("success", func() {
		gomock.InOrder(
			s.mockUsers.EXPECT().EmailTaken(gomock.Any(), u.Email, int64(0)).Return(false, nil),
			s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, created *user.User) (int64, error) {
					s.Equal(u.Name, created.Name())
					s.Equal(u.Email, created.Email().Value())
					return u.ID, nil
				}),
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
		)

		view, err := s.commands.Create(ctx, input)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), u.ID, view.ID)
	})

	s.Run("invalid email", func() {
		_, err := s.commands.Create(ctx, commands.CreateUserInput{Name: u.Name, Email: "not-an-email"})
		assert.ErrorIs(s.T(), err, commands.ErrInvalidUser)
		assert.ErrorIs(s.T(), err, user.ErrInvalidEmail)
	})

	s.Run("blank name", func() {
		_, err := s.commands.Create(ctx, commands.CreateUserInput{Name: "  ", Email: u.Email})
		assert.ErrorIs(s.T(), err, commands.ErrInvalidUser)
		assert.ErrorIs(s.T(), err, user.ErrEmptyName)
	})

	s.Run("email already taken", func() {
		s.mockUsers.EXPECT().EmailTaken(gomock.Any(), u.Email, int64(0)).Return(true, nil)

		_, err := s.commands.Create(ctx, input)
		assert.ErrorIs(s.T(), err, commands.ErrEmailExists)
	})

	s.Run("unique index wins a racing insert", func() {
		gomock.InOrder(
			s.mockUsers.EXPECT().EmailTaken(gomock.Any(), u.Email, int64(0)).Return(false, nil),
			s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), duplicateKey()),
		)

		_, err := s.commands.Create(ctx, input)
		assert.ErrorIs(s.T(), err, commands.ErrEmailExists)
	})
}

func (s *UserCommandsTestSuite) TestUpdate() {
	ctx := context.Background()
	u := builder.NewUserBuilder()

	s.Run("rename only keeps the email unchecked", func() {
		name := "Alicia"
		updated := builder.NewUserBuilder().WithName(name)
		gomock.InOrder(
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
			s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, changed *user.User) error {
					s.Equal(name, changed.Name())
					s.Equal(u.Email, changed.Email().Value())
					return nil
				}),
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(updated.BuildView(), nil),
		)

		view, err := s.commands.Update(ctx, u.ID, commands.UpdateUserInput{Name: &name})
		require.NoError(s.T(), err)
		assert.Equal(s.T(), name, view.Name)
	})

	s.Run("email change excludes the user itself from the conflict check", func() {
		email := "alice@new.example.com"
		updated := builder.NewUserBuilder().WithEmail(email)
		gomock.InOrder(
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
			s.mockUsers.EXPECT().EmailTaken(gomock.Any(), email, u.ID).Return(false, nil),
			s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil),
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(updated.BuildView(), nil),
		)

		view, err := s.commands.Update(ctx, u.ID, commands.UpdateUserInput{Email: &email})
		require.NoError(s.T(), err)
		assert.Equal(s.T(), email, view.Email)
	})

	s.Run("same email skips the conflict check", func() {
		gomock.InOrder(
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
			s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil),
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
		)

		_, err := s.commands.Update(ctx, u.ID, commands.UpdateUserInput{Email: &u.Email})
		assert.NoError(s.T(), err)
	})

	s.Run("email taken by another user", func() {
		email := "bob@example.com"
		gomock.InOrder(
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
			s.mockUsers.EXPECT().EmailTaken(gomock.Any(), email, u.ID).Return(true, nil),
		)

		_, err := s.commands.Update(ctx, u.ID, commands.UpdateUserInput{Email: &email})
		assert.ErrorIs(s.T(), err, commands.ErrEmailExists)
	})

	s.Run("unknown user", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(nil, notFound())

		_, err := s.commands.Update(ctx, u.ID, commands.UpdateUserInput{})
		assert.ErrorIs(s.T(), err, commands.ErrUserNotFound)
	})
}

func (s *UserCommandsTestSuite) TestDelete() {
	ctx := context.Background()
	u := builder.NewUserBuilder()

	s.Run("success", func() {
		gomock.InOrder(
			s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildView(), nil),
			s.mockRepo.EXPECT().Delete(gomock.Any(), u.ID).Return(nil),
		)

		assert.NoError(s.T(), s.commands.Delete(ctx, u.ID))
	})

	s.Run("unknown user", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(nil, notFound())

		assert.ErrorIs(s.T(), s.commands.Delete(ctx, u.ID), commands.ErrUserNotFound)
	})
}
