package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand represents a courier's claim on an unassigned order.
// The first courier to claim an order wins; later claims fail with a
// conflict.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command for a courier to claim an order.
func NewTakeOrderCommand(orderID, driverID kernel.UUID) (TakeOrderCommand, error) {
	command := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTakeOrderCommandIsNotConstructed if validation fails.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the claiming courier.
func (c TakeOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TakeOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
