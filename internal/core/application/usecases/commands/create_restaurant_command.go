package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents an owner registering a new restaurant.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	category     string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// Name validation is delegated to the restaurant aggregate.
func NewCreateRestaurantCommand(
	restaurantID, ownerID kernel.UUID,
	name, category string,
) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setOwnerID(ownerID),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	command.name = name
	command.category = category

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRestaurantCommandIsNotConstructed if validation fails.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier assigned to the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the identifier of the registering owner.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Category returns the cuisine category.
func (c CreateRestaurantCommand) Category() string {
	return c.category
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
