package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyEmailCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	user, err := account.NewUser(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleClient)
	require.NoError(t, err)
	verification, err := account.NewVerification(kernel.NewUUID(), user.ID())
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", ctx, user.ID()).Return(user, nil).Once()
	users.On("Update", ctx, mock.MatchedBy(func(u *account.User) bool {
		return u.Verified()
	})).Return(nil).Once()

	verifications := new(MockVerificationRepository)
	verifications.On("GetByCode", ctx, verification.Code()).Return(verification, nil).Once()
	verifications.On("Delete", ctx, verification.ID()).Return(nil).Once()

	cmd, err := commands.NewVerifyEmailCommand(verification.Code())
	require.NoError(t, err)

	h := commands.NewVerifyEmailCommandHandler(accountUoW(t, users, verifications))
	require.NoError(t, h.Handle(ctx, cmd))
	users.AssertExpectations(t)
	verifications.AssertExpectations(t)
}

func TestVerifyEmailCommandHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()

	verifications := new(MockVerificationRepository)
	verifications.On("GetByCode", ctx, "bogus").
		Return(nil, errs.NewObjectNotFoundError("code", "bogus")).Once()

	cmd, err := commands.NewVerifyEmailCommand("bogus")
	require.NoError(t, err)

	h := commands.NewVerifyEmailCommandHandler(accountUoW(t, new(MockUserRepository), verifications))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewVerifyEmailCommand_EmptyCode(t *testing.T) {
	_, err := commands.NewVerifyEmailCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
