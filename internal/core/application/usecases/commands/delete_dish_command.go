package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

// DeleteDishCommand represents an owner removing a dish from one of their
// menus.
type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	dishID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDishCommand creates a dish deletion command.
func NewDeleteDishCommand(dishID, ownerID kernel.UUID) (DeleteDishCommand, error) {
	command := DeleteDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDishID(dishID),
		command.setOwnerID(ownerID),
	); err != nil {
		return DeleteDishCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDishCommandIsNotConstructed if validation fails.
func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

// DishID returns the identifier of the dish being removed.
func (c DeleteDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// OwnerID returns the identifier of the requesting owner.
func (c DeleteDishCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *DeleteDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *DeleteDishCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
