// Package events defines the named notification channels of the order
// lifecycle and the JSON payload shapes published on them. Subscribers filter
// payloads on their own side; the hub carries every event of a channel to
// every subscriber of that channel.
package events

import (
	"time"

	"eats/internal/core/domain/model/order"
)

// Channel names used by the order lifecycle.
const (
	// NewPendingOrderChannel carries freshly created orders, tagged with the
	// owner of the restaurant they were placed at so the owner's dashboard
	// can filter for its own venues.
	NewPendingOrderChannel = "orders.pending"

	// NewCookedOrderChannel carries orders that just became ready for
	// pickup; couriers watch this channel for work.
	NewCookedOrderChannel = "orders.cooked"

	// NewOrderUpdateChannel carries every status change of every order, for
	// anyone tracking a particular order.
	NewOrderUpdateChannel = "orders.updates"
)

// OrderPayload is the wire form of an order inside an event.
type OrderPayload struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	DriverID     string    `json:"driver_id,omitempty"`
	Status       string    `json:"status"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingOrderEvent is published on NewPendingOrderChannel.
type PendingOrderEvent struct {
	Order   OrderPayload `json:"order"`
	OwnerID string       `json:"owner_id"`
}

// CookedOrderEvent is published on NewCookedOrderChannel.
type CookedOrderEvent struct {
	Order OrderPayload `json:"order"`
}

// OrderUpdateEvent is published on NewOrderUpdateChannel.
type OrderUpdateEvent struct {
	Order OrderPayload `json:"order"`
}

// PayloadFromOrder converts an order aggregate into its event wire form.
func PayloadFromOrder(o *order.Order) OrderPayload {
	p := OrderPayload{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
	}
	if o.DriverID() != nil {
		p.DriverID = o.DriverID().String()
	}
	return p
}
