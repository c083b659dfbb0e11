package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand represents an owner removing one of their
// restaurants. The restaurant's menu is removed with it.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a restaurant deletion command.
func NewDeleteRestaurantCommand(restaurantID, ownerID kernel.UUID) (DeleteRestaurantCommand, error) {
	command := DeleteRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
	); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteRestaurantCommandIsNotConstructed if validation fails.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being removed.
func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the identifier of the requesting owner.
func (c DeleteRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *DeleteRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *DeleteRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
