package services

import (
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderAccessPolicy decides what a caller may do with a particular order
// based on the caller's role and relationship to it.
type OrderAccessPolicy struct{}

// NewOrderAccessPolicy creates a new OrderAccessPolicy instance.
func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// CanView reports whether the caller may see the order. Exactly one
// relationship qualifies per role: the customer who placed it, the courier
// assigned to it, or the owner of the restaurant it was placed at
// (restaurantOwnerID). Every other caller is denied, matching role included.
func (OrderAccessPolicy) CanView(caller account.Caller, ord *order.Order, restaurantOwnerID kernel.UUID) bool {
	switch caller.Role() {
	case account.RoleClient:
		return caller.ID().IsEqual(ord.CustomerID())
	case account.RoleDelivery:
		return ord.DriverID() != nil && caller.ID().IsEqual(*ord.DriverID())
	case account.RoleOwner:
		return caller.ID().IsEqual(restaurantOwnerID)
	default:
		return false
	}
}

// CanTransition reports whether a caller with the given role may move an
// order to the target status. Customers never transition orders; owners own
// the cooking half of the lifecycle, couriers the delivery half.
//
// The mapping is deliberately role-to-target only: it does not re-check that
// an owner actually owns the order's restaurant, or that a courier is the
// assigned one. Ownership is enforced by visibility (CanView), not by
// transition.
func (OrderAccessPolicy) CanTransition(role account.Role, target order.Status) bool {
	switch role {
	case account.RoleOwner:
		return target == order.StatusCooking || target == order.StatusCooked
	case account.RoleDelivery:
		return target == order.StatusPickedUp || target == order.StatusDelivered
	default:
		return false
	}
}
