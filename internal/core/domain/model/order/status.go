package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// The full sequence is
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//
// The engine does not force transitions to walk this sequence one step at a
// time; which targets a caller may request is constrained by role instead
// (owners move orders into the cooking states, couriers into the delivery
// states, customers never transition at all). See services.OrderAccessPolicy.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every created order, waiting
	// for the restaurant to start cooking.
	StatusPending

	// StatusCooking indicates the restaurant has accepted the order.
	StatusCooking

	// StatusCooked indicates the meal is ready for pickup by a courier.
	StatusCooked

	// StatusPickedUp indicates a courier has collected the order.
	StatusPickedUp

	// StatusDelivered indicates the order reached the customer. Final state.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusCooking:   "Cooking",
		StatusCooked:    "Cooked",
		StatusPickedUp:  "PickedUp",
		StatusDelivered: "Delivered",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"Pending":   StatusPending,
		"Cooking":   StatusCooking,
		"Cooked":    StatusCooked,
		"PickedUp":  StatusPickedUp,
		"Delivered": StatusDelivered,
	}
}

// StatusFromString parses a status name as supplied by callers.
func StatusFromString(s string) (Status, error) {
	if status, ok := getValidStatusStrings()[s]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
