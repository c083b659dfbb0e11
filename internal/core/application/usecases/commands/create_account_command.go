package commands

import (
	"errors"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand represents a public sign-up request. Every account is
// created with exactly one role and an unverified email address.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a sign-up command.
// Credential and role validation is delegated to the account aggregate; the
// command only checks the identifier and that a role was parsed at all.
func NewCreateAccountCommand(
	userID kernel.UUID,
	email, password string,
	role account.Role,
) (CreateAccountCommand, error) {
	command := CreateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setRole(role),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	command.email = email
	command.password = password

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAccountCommandIsNotConstructed if validation fails.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new account.
func (c CreateAccountCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the sign-up email address.
func (c CreateAccountCommand) Email() string {
	return c.email
}

// Password returns the sign-up password in plain text.
func (c CreateAccountCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c CreateAccountCommand) Role() account.Role {
	return c.role
}

func (c *CreateAccountCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
