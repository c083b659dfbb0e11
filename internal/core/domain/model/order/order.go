package order

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDriverAlreadyAssigned is returned when an order that already has a
	// courier is claimed again. Assignment is first-claim-wins and immutable.
	ErrDriverAlreadyAssigned = errors.New("order already has a courier assigned")
)

// Order is the aggregate root of the order lifecycle. It references exactly
// one customer and one restaurant, carries item snapshots, and holds the total
// computed once at creation time.
//
// Invariants:
//   - valid unique identifier, customer and restaurant references
//   - at least one item
//   - total is never recomputed after creation
//   - driverID is nil until a courier claims the order and immutable afterwards
//   - status is mutated only through ChangeStatus
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID
	items        []Item
	total        int64
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status with the given pre-computed
// total. The total is the lifecycle engine's job (base prices plus option and
// choice extras); the aggregate only refuses totals below zero.
func NewOrder(id, customerID, restaurantID kernel.UUID, items []Item, total int64, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	total int64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, items, total, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DriverID returns the assigned courier's identifier, or nil when unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Items returns the order's item snapshots.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the price computed at creation time.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the given lifecycle status. Which callers
// may request which targets is decided by the access policy before this is
// reached; the aggregate itself only rejects values outside the status set.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// AssignDriver claims the order for a courier. The first claim wins; any
// later claim fails with ErrDriverAlreadyAssigned.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrDriverAlreadyAssigned
	}
	o.driverID = &driverID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setTotal(total int64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%d is negative", total))
	}
	o.total = total
	return nil
}
