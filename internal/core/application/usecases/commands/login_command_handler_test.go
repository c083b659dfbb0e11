package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	user, err := account.NewUser(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleClient)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "user@eats.dev").Return(user, nil).Once()

	tokens := new(MockTokenService)
	tokens.On("Sign", user.ID()).Return("signed-token", nil).Once()

	cmd, err := commands.NewLoginCommand("user@eats.dev", "s3cret")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(accountUoW(t, users, new(MockVerificationRepository)), tokens)
	token, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "signed-token", token)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	user, err := account.NewUser(kernel.NewUUID(), "user@eats.dev", "s3cret", account.RoleClient)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "user@eats.dev").Return(user, nil).Once()

	cmd, err := commands.NewLoginCommand("user@eats.dev", "wrong")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(accountUoW(t, users, new(MockVerificationRepository)), new(MockTokenService))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLoginCommandHandler_Handle_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	ctx := t.Context()

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "ghost@eats.dev").
		Return(nil, errs.NewObjectNotFoundError("email", "ghost@eats.dev")).Once()

	cmd, err := commands.NewLoginCommand("ghost@eats.dev", "whatever")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler(accountUoW(t, users, new(MockVerificationRepository)), new(MockTokenService))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
