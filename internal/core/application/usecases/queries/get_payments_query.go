package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
)

// GetPaymentsQuery lists the promotion payments made by an owner.
type GetPaymentsQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentsQuery creates a payment listing query for the owner.
func NewGetPaymentsQuery(ownerID kernel.UUID) (GetPaymentsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}

	return GetPaymentsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPaymentsQueryIsNotConstructed if validation fails.
func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

// OwnerID returns the owner the listing is scoped to.
func (q GetPaymentsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetPaymentsQueryResponse is one payment in a listing.
type GetPaymentsQueryResponse struct {
	ID            kernel.UUID
	TransactionID string
	RestaurantID  kernel.UUID
	CreatedAt     time.Time
}
