package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents an owner recording a promotion payment for
// one of their restaurants.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	transactionID string
	ownerID       kernel.UUID
	restaurantID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a promotion payment.
func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	transactionID string,
	ownerID, restaurantID kernel.UUID,
) (CreatePaymentCommand, error) {
	command := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(paymentID),
		command.setTransactionID(transactionID),
		command.setOwnerID(ownerID),
		command.setRestaurantID(restaurantID),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePaymentCommandIsNotConstructed if validation fails.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier assigned to the payment record.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// TransactionID returns the processor's transaction reference.
func (c CreatePaymentCommand) TransactionID() string {
	return c.transactionID
}

// OwnerID returns the identifier of the paying owner.
func (c CreatePaymentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// RestaurantID returns the identifier of the promoted restaurant.
func (c CreatePaymentCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *CreatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}

	c.transactionID = transactionID
	return nil
}

func (c *CreatePaymentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreatePaymentCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
