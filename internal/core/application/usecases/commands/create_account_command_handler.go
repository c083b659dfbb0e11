package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateAccountCommandHandler handles sign-up. Creates the user together
// with an email verification code in one transaction, then hands the code to
// the mailer. Mail delivery is best effort; a lost mail never loses the
// account.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	mailer     ports.Mailer
}

// NewCreateAccountCommandHandler creates a handler for account sign-up.
func NewCreateAccountCommandHandler(
	uowFactory AccountUoWFactory,
	mailer ports.Mailer,
) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
	}
}

// Handle processes the sign-up command.
// Returns a conflict error when the email is already registered.
func (h CreateAccountCommandHandler) Handle(ctx context.Context, command CreateAccountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := userRepo.GetByEmail(ctx, command.Email()); err == nil {
		return errs.NewConflictError("email is already registered")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	user, err := account.NewUser(command.UserID(), command.Email(), command.Password(), command.Role())
	if err != nil {
		return err
	}

	if err := userRepo.Add(ctx, user); err != nil {
		return err
	}

	verification, err := account.NewVerification(kernel.NewUUID(), user.ID())
	if err != nil {
		return err
	}

	if err := uow.VerificationRepository().Add(ctx, verification); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort; the code can be re-issued later.
	_ = h.mailer.SendVerification(ctx, user.Email(), verification.Code())

	return nil
}
