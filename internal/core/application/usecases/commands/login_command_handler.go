package commands

import (
	"context"
	"errors"

	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// LoginCommandHandler checks credentials and issues session tokens. Unknown
// emails and wrong passwords produce the same unauthorized error so the
// login endpoint cannot be used to probe which emails are registered.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	tokens     ports.TokenService
}

// NewLoginCommandHandler creates a handler for credential checks.
func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle processes the login command and returns a signed token on success.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", errs.NewUnauthorizedError("invalid credentials")
		}
		return "", err
	}

	if !user.CheckPassword(command.Password()) {
		return "", errs.NewUnauthorizedError("invalid credentials")
	}

	if err := uow.Commit(ctx); err != nil {
		return "", err
	}

	return h.tokens.Sign(user.ID())
}
