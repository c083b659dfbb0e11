package account

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// ErrCallerIsNotConstructed is returned when a Caller was not created through
// the NewCaller factory function.
var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller is the identity context attached to an incoming operation: the
// authenticated user's id and role, nothing more. It is threaded explicitly
// through every use case rather than stored in shared request state, so a
// handler can never observe a half-resolved identity.
//
// Operations that are publicly reachable receive no Caller at all; the
// authorization policy treats that absence as anonymous.
type Caller struct {
	id   kernel.UUID
	role Role
}

// NewCaller creates a validated caller identity.
func NewCaller(id kernel.UUID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role}, nil
}

// Validate ensures the caller was created via NewCaller.
func (c Caller) Validate() error {
	if err := c.id.Validate(); err != nil {
		return ErrCallerIsNotConstructed
	}
	return nil
}

// ID returns the authenticated user's identifier.
func (c Caller) ID() kernel.UUID {
	return c.id
}

// Role returns the authenticated user's role.
func (c Caller) Role() Role {
	return c.role
}
