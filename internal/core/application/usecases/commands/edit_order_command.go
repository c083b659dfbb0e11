package commands

import (
	"errors"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to move an order to a new lifecycle
// status. The caller's role decides which target statuses are admissible:
// owners cook, couriers deliver.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	callerRole account.Role
	status     order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to change an order's status.
// Validates the order id, the caller role and the target status.
func NewEditOrderCommand(
	orderID kernel.UUID,
	callerRole account.Role,
	status order.Status,
) (EditOrderCommand, error) {
	command := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCallerRole(callerRole),
		command.setStatus(status),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerRole returns the role of the account requesting the change.
func (c EditOrderCommand) CallerRole() account.Role {
	return c.callerRole
}

// Status returns the requested target status.
func (c EditOrderCommand) Status() order.Status {
	return c.status
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setCallerRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.callerRole = role
	return nil
}

func (c *EditOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
