// Package payment contains the payment record an owner creates to promote a
// restaurant. Charging itself happens at an external provider; only the
// resulting transaction reference is stored here.
package payment

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Payment records one promotion purchase: which owner paid, for which
// restaurant, and the provider's transaction reference.
type Payment struct {
	id            kernel.UUID
	transactionID string
	userID        kernel.UUID
	restaurantID  kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

// NewPayment creates a payment record.
func NewPayment(id kernel.UUID, transactionID string, userID, restaurantID kernel.UUID, createdAt time.Time) (*Payment, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}

	return &Payment{
		id:            id,
		transactionID: transactionID,
		userID:        userID,
		restaurantID:  restaurantID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(id kernel.UUID, transactionID string, userID, restaurantID kernel.UUID, createdAt time.Time) (*Payment, error) {
	return NewPayment(id, transactionID, userID, restaurantID, createdAt)
}

// Validate ensures the payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// TransactionID returns the external provider's transaction reference.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// UserID returns the paying owner's identifier.
func (p *Payment) UserID() kernel.UUID {
	return p.userID
}

// RestaurantID returns the promoted restaurant's identifier.
func (p *Payment) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// CreatedAt returns the record's creation timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
