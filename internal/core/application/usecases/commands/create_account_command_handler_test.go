package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func accountUoW(t *testing.T, users *MockUserRepository, verifications *MockVerificationRepository) *MockAccountUoWFactory {
	t.Helper()
	uow := new(MockAccountUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("VerificationRepository").Return(verifications)
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

func TestCreateAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleClient)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "user@eats.dev").
		Return(nil, errs.NewObjectNotFoundError("email", "user@eats.dev")).Once()
	users.On("Add", ctx, mock.MatchedBy(func(u *account.User) bool {
		return u.Email() == "user@eats.dev" && !u.Verified()
	})).Return(nil).Once()

	verifications := new(MockVerificationRepository)
	verifications.On("Add", ctx, mock.AnythingOfType("*account.Verification")).Return(nil).Once()

	mailer := new(MockMailer)
	mailer.On("SendVerification", ctx, "user@eats.dev", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewCreateAccountCommandHandler(accountUoW(t, users, verifications), mailer)
	require.NoError(t, h.Handle(ctx, cmd))
	users.AssertExpectations(t)
	verifications.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestCreateAccountCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleClient)
	require.NoError(t, err)

	existing, err := account.NewUser(kernel.NewUUID(), "user@eats.dev", "other", account.RoleOwner)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "user@eats.dev").Return(existing, nil).Once()

	h := commands.NewCreateAccountCommandHandler(accountUoW(t, users, new(MockVerificationRepository)), new(MockMailer))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateAccountCommandHandler_Handle_MailFailureDoesNotFailSignup(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleOwner)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "user@eats.dev").
		Return(nil, errs.NewObjectNotFoundError("email", "user@eats.dev")).Once()
	users.On("Add", ctx, mock.Anything).Return(nil).Once()

	verifications := new(MockVerificationRepository)
	verifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	mailer := new(MockMailer)
	mailer.On("SendVerification", ctx, "user@eats.dev", mock.Anything).
		Return(errors.New("smtp down")).Once()

	h := commands.NewCreateAccountCommandHandler(accountUoW(t, users, verifications), mailer)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestCreateAccountCommand_RejectsAnyRole(t *testing.T) {
	_, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleAny)
	require.Error(t, err)
}
