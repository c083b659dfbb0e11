package account

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role is the closed set of identities a caller can act as. It replaces the
// free-form role tags of earlier designs with a proper enum: a user holds
// exactly one of Client, Owner or Delivery for the lifetime of the account.
//
// RoleAny is a requirement sentinel, not a user role. Operation role
// declarations use it to mean "any authenticated caller"; a user account can
// never be created with it.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleClient is an ordering customer.
	RoleClient

	// RoleOwner is a restaurant operator.
	RoleOwner

	// RoleDelivery is a courier.
	RoleDelivery

	// RoleAny is the requirement sentinel admitting any authenticated caller.
	RoleAny
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleClient:   "Client",
		RoleOwner:    "Owner",
		RoleDelivery: "Delivery",
		RoleAny:      "Any",
	}
}

// RoleFromString parses a role name as supplied by callers ("Client", "Owner",
// "Delivery"). The Any sentinel is deliberately not parseable: it exists only
// in operation requirement declarations.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Client":
		return RoleClient, nil
	case "Owner":
		return RoleOwner, nil
	case "Delivery":
		return RoleDelivery, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is one a user account may hold.
// RoleUnknown and RoleAny are invalid account roles.
func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid account role", r))
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}
