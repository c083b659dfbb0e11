package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents an owner adding a dish to one of their
// restaurants. Options and extras are validated by the dish aggregate.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	description  string
	price        int64
	options      []restaurant.DishOption

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to a restaurant.
func NewCreateDishCommand(
	dishID, restaurantID, ownerID kernel.UUID,
	name, description string,
	price int64,
	options []restaurant.DishOption,
) (CreateDishCommand, error) {
	command := CreateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDishID(dishID),
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
	); err != nil {
		return CreateDishCommand{}, err
	}

	command.name = name
	command.description = description
	command.price = price
	command.options = options

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDishCommandIsNotConstructed if validation fails.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// DishID returns the identifier assigned to the new dish.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// RestaurantID returns the identifier of the restaurant the dish belongs to.
func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the identifier of the requesting owner.
func (c CreateDishCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Price returns the base price in minor currency units.
func (c CreateDishCommand) Price() int64 {
	return c.price
}

// Options returns the configurable options of the dish.
func (c CreateDishCommand) Options() []restaurant.DishOption {
	return c.options
}

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateDishCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
