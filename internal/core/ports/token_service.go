package ports

import (
	"eats/internal/core/domain/model/kernel"
)

// TokenService signs and verifies the opaque session tokens issued at login.
// The token carries the user id only; roles are resolved from storage on each
// request so a role can never be forged into a stale token.
type TokenService interface {
	// Sign issues a token for the given user id.
	Sign(userID kernel.UUID) (string, error)

	// Verify checks a caller-supplied token and returns the user id it was
	// issued for.
	Verify(token string) (kernel.UUID, error)
}
