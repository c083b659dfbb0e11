package commands

import (
	"context"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
)

// EditProfileCommandHandler updates an account's own email or password.
// Changing the email resets the verified flag and issues a fresh
// verification code to the new address.
type EditProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	mailer     ports.Mailer
}

// NewEditProfileCommandHandler creates a handler for profile updates.
func NewEditProfileCommandHandler(
	uowFactory AccountUoWFactory,
	mailer ports.Mailer,
) EditProfileCommandHandler {
	return EditProfileCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
	}
}

// Handle processes the profile update command.
func (h EditProfileCommandHandler) Handle(ctx context.Context, command EditProfileCommand) error {
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
	user, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	var verification *account.Verification
	if command.Email() != "" {
		if err := user.ChangeEmail(command.Email()); err != nil {
			return err
		}

		verification, err = account.NewVerification(kernel.NewUUID(), user.ID())
		if err != nil {
			return err
		}
		if err := uow.VerificationRepository().Add(ctx, verification); err != nil {
			return err
		}
	}

	if command.Password() != "" {
		if err := user.ChangePassword(command.Password()); err != nil {
			return err
		}
	}

	if err := userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if verification != nil {
		_ = h.mailer.SendVerification(ctx, user.Email(), verification.Code())
	}

	return nil
}
