package commands

import (
	"context"
)

// VerifyEmailCommandHandler redeems one-time verification codes. The code is
// consumed on success; redeeming it twice fails with object-not-found.
type VerifyEmailCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewVerifyEmailCommandHandler creates a handler for email verification.
func NewVerifyEmailCommandHandler(uowFactory AccountUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
// Marks the code's account verified and deletes the code in one transaction.
func (h VerifyEmailCommandHandler) Handle(ctx context.Context, command VerifyEmailCommand) error {
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

	verificationRepo := uow.VerificationRepository()
	verification, err := verificationRepo.GetByCode(ctx, command.Code())
	if err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, verification.UserID())
	if err != nil {
		return err
	}

	user.MarkVerified()
	if err := userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := verificationRepo.Delete(ctx, verification.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
