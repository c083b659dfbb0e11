package queries

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrGetCategoriesQueryIsNotConstructed = errors.New(
	"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
)

// GetCategoriesQuery lists every category currently in use, with how many
// restaurants each holds. Categories are labels on restaurants, not rows of
// their own, so an unused category simply stops existing.
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a parameterless category listing query.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoriesQueryIsNotConstructed if validation fails.
func (q *GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// GetCategoriesQueryResponse is one category with its restaurant count. Slug
// is the URL-safe form of the name used by the category lookup.
type GetCategoriesQueryResponse struct {
	Name            string
	Slug            string
	RestaurantCount int64
}
