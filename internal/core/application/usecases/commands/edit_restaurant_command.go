package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var (
	ErrEditRestaurantCommandIsNotConstructed = errors.New(
		"EditRestaurantCommand must be created via NewEditRestaurantCommand constructor",
	)
	ErrNothingToEditRestaurant = errors.New("at least one of name or category must be provided")
)

// EditRestaurantCommand represents an owner updating one of their
// restaurants. Empty fields are left unchanged.
type EditRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	category     string

	guard guard.ConstructorGuard
}

// NewEditRestaurantCommand creates a restaurant update command. At least one
// of name or category must be non-empty.
func NewEditRestaurantCommand(
	restaurantID, ownerID kernel.UUID,
	name, category string,
) (EditRestaurantCommand, error) {
	command := EditRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
	); err != nil {
		return EditRestaurantCommand{}, err
	}

	if name == "" && category == "" {
		return EditRestaurantCommand{}, ErrNothingToEditRestaurant
	}

	command.name = name
	command.category = category

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditRestaurantCommandIsNotConstructed if validation fails.
func (c EditRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrEditRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being updated.
func (c EditRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the identifier of the requesting owner.
func (c EditRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the new name, or the empty string when unchanged.
func (c EditRestaurantCommand) Name() string {
	return c.name
}

// Category returns the new category, or the empty string when unchanged.
func (c EditRestaurantCommand) Category() string {
	return c.category
}

func (c *EditRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *EditRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
