package services

import (
	"eats/internal/core/domain/model/account"
)

// AccessPolicy decides whether a caller may enter an operation at all, given
// the operation's declared role requirement. Requirements are declared
// statically per operation by the dispatch layer; this service only evaluates
// them.
//
// Rules:
//   - no declared roles: admit unconditionally (public operation)
//   - declared roles include the Any sentinel: admit any authenticated caller
//   - otherwise: admit iff the caller's role is in the declared set
//
// The policy is evaluated before any business logic runs, so a denied caller
// can never cause a side effect.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Admit reports whether a caller satisfies the declared role requirement.
// caller is nil for anonymous requests.
func (AccessPolicy) Admit(required []account.Role, caller *account.Caller) bool {
	if len(required) == 0 {
		return true
	}
	if caller == nil {
		return false
	}
	for _, role := range required {
		if role == account.RoleAny || role == caller.Role() {
			return true
		}
	}
	return false
}
