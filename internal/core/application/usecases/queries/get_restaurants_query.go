package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// GetRestaurantsQuery lists restaurants for browsing. The listing is public
// and paginated; restaurants with an active paid promotion sort first.
type GetRestaurantsQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a paginated restaurant listing query.
// Page numbering starts at 1; a zero pageSize selects the default.
func NewGetRestaurantsQuery(page, pageSize int) (GetRestaurantsQuery, error) {
	if page < 1 {
		return GetRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return GetRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return GetRestaurantsQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantsQueryIsNotConstructed if validation fails.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetRestaurantsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetRestaurantsQuery) PageSize() int {
	return q.pageSize
}

// GetRestaurantsQueryResponse is one restaurant in a listing.
type GetRestaurantsQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Name          string
	Category      string
	PromotedUntil *time.Time
}
