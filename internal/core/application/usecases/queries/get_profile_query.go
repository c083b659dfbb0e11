package queries

import (
	"errors"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the caller's own account profile.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a profile query for the given account.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the identifier of the account.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// GetProfileQueryResponse is the caller-visible view of an account.
// The password hash never leaves the storage layer.
type GetProfileQueryResponse struct {
	ID       kernel.UUID
	Email    string
	Role     account.Role
	Verified bool
}
