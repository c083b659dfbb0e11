package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items. The caller must be
// a party to the order: its customer, its assigned courier, or the owner of
// the restaurant it was placed at.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  account.Caller

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query for the caller.
func NewGetOrderQuery(orderID kernel.UUID, caller account.Caller) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), caller.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Caller returns the requesting account.
func (q GetOrderQuery) Caller() account.Caller {
	return q.caller
}

// GetOrderItemResponse is one item of a retrieved order.
type GetOrderItemResponse struct {
	ID      kernel.UUID
	DishID  kernel.UUID
	Options []order.SelectedOption
}

// GetOrderQueryResponse is a retrieved order with its items.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Status       order.Status
	Total        int64
	CreatedAt    time.Time
	Items        []GetOrderItemResponse
}
