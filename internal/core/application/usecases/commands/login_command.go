package commands

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a credential check that, on success, yields a
// signed session token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Credentials are checked against
// the stored account by the handler, never here.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	command := LoginCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email address.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the login password in plain text.
func (c LoginCommand) Password() string {
	return c.password
}
