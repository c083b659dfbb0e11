package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its item snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimForDriver atomically assigns the courier to the order iff no
	// courier is assigned yet. Implementations must perform this as a
	// conditional write (compare-and-swap on the empty driver column), not a
	// read-then-write pair: two concurrent claims for the same order must
	// resolve to exactly one winner. The loser receives a conflict error.
	ClaimForDriver(ctx context.Context, orderID, driverID kernel.UUID) error
}
