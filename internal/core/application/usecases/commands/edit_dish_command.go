package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/guard"
)

var (
	ErrEditDishCommandIsNotConstructed = errors.New(
		"EditDishCommand must be created via NewEditDishCommand constructor",
	)
	ErrNothingToEditDish = errors.New(
		"at least one of name, description, price or options must be provided",
	)
)

// EditDishCommand represents an owner updating a dish on one of their menus.
// Nil or empty fields are left unchanged; a non-nil options slice replaces
// the option set wholesale (an empty non-nil slice clears it).
type EditDishCommand struct { //nolint:recvcheck //using for validation
	dishID      kernel.UUID
	ownerID     kernel.UUID
	name        string
	description string
	price       *int64
	options     []restaurant.DishOption
	hasOptions  bool

	guard guard.ConstructorGuard
}

// NewEditDishCommand creates a dish update command.
func NewEditDishCommand(
	dishID, ownerID kernel.UUID,
	name, description string,
	price *int64,
	options []restaurant.DishOption,
) (EditDishCommand, error) {
	command := EditDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDishID(dishID),
		command.setOwnerID(ownerID),
	); err != nil {
		return EditDishCommand{}, err
	}

	if name == "" && description == "" && price == nil && options == nil {
		return EditDishCommand{}, ErrNothingToEditDish
	}

	command.name = name
	command.description = description
	command.price = price
	command.options = options
	command.hasOptions = options != nil

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditDishCommandIsNotConstructed if validation fails.
func (c EditDishCommand) Validate() error {
	return c.guard.Validate(ErrEditDishCommandIsNotConstructed)
}

// DishID returns the identifier of the dish being updated.
func (c EditDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// OwnerID returns the identifier of the requesting owner.
func (c EditDishCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the new name, or the empty string when unchanged.
func (c EditDishCommand) Name() string {
	return c.name
}

// Description returns the new description, or the empty string when unchanged.
func (c EditDishCommand) Description() string {
	return c.description
}

// Price returns the new base price, or nil when unchanged.
func (c EditDishCommand) Price() *int64 {
	return c.price
}

// Options returns the replacement option set.
func (c EditDishCommand) Options() []restaurant.DishOption {
	return c.options
}

// HasOptions reports whether the command carries a replacement option set.
func (c EditDishCommand) HasOptions() bool {
	return c.hasOptions
}

func (c *EditDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *EditDishCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
