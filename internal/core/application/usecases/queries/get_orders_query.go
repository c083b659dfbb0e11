// Package queries contains read-only operations that bypass the domain
// aggregates and read projections straight from the database. Queries never
// mutate state and never load full aggregates; they return flat response
// structs shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders visible to the caller. What "visible"
// means depends on the caller's role: customers see what they ordered,
// couriers what they deliver, owners what their restaurants received.
// An optional status narrows the listing.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	caller account.Caller
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query for the caller.
// Pass a nil status to list orders in every status.
func NewGetOrdersQuery(caller account.Caller, status *order.Status) (GetOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		caller: caller,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Caller returns the account the listing is scoped to.
func (q GetOrdersQuery) Caller() account.Caller {
	return q.caller
}

// Status returns the optional status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse is one order in a listing.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Status       order.Status
	Total        int64
	CreatedAt    time.Time
}
