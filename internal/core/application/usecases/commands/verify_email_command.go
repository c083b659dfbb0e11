package commands

import (
	"errors"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrVerifyEmailCommandIsNotConstructed = errors.New(
	"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
)

// VerifyEmailCommand represents the redemption of a one-time email
// verification code.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand creates a verification command from a mailed code.
func NewVerifyEmailCommand(code string) (VerifyEmailCommand, error) {
	if code == "" {
		return VerifyEmailCommand{}, errs.NewValueIsRequiredError("code")
	}

	return VerifyEmailCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyEmailCommandIsNotConstructed if validation fails.
func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

// Code returns the one-time verification code.
func (c VerifyEmailCommand) Code() string {
	return c.code
}
