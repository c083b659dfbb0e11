package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var (
	ErrEditProfileCommandIsNotConstructed = errors.New(
		"EditProfileCommand must be created via NewEditProfileCommand constructor",
	)
	ErrNothingToEdit = errors.New("at least one of email or password must be provided")
)

// EditProfileCommand represents an authenticated account updating its own
// email or password. Empty fields are left unchanged.
type EditProfileCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewEditProfileCommand creates a profile update command. At least one of
// email or password must be non-empty.
func NewEditProfileCommand(userID kernel.UUID, email, password string) (EditProfileCommand, error) {
	command := EditProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return EditProfileCommand{}, err
	}
	if email == "" && password == "" {
		return EditProfileCommand{}, ErrNothingToEdit
	}

	command.email = email
	command.password = password

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditProfileCommandIsNotConstructed if validation fails.
func (c EditProfileCommand) Validate() error {
	return c.guard.Validate(ErrEditProfileCommandIsNotConstructed)
}

// UserID returns the identifier of the account being updated.
func (c EditProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the new email address, or the empty string when unchanged.
func (c EditProfileCommand) Email() string {
	return c.email
}

// Password returns the new password, or the empty string when unchanged.
func (c EditProfileCommand) Password() string {
	return c.password
}

func (c *EditProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
