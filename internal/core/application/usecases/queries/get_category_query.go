package queries

import (
	"errors"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery pages through the restaurants of one category, addressed
// by slug.
type GetCategoryQuery struct { //nolint:recvcheck //using for validation
	slug     string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates a category lookup query.
func NewGetCategoryQuery(slug string, page, pageSize int) (GetCategoryQuery, error) {
	if slug == "" {
		return GetCategoryQuery{}, errs.NewValueIsRequiredError("slug")
	}
	if page < 1 {
		return GetCategoryQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return GetCategoryQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return GetCategoryQuery{
		slug:     slug,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoryQueryIsNotConstructed if validation fails.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

// Slug returns the category slug being looked up.
func (q GetCategoryQuery) Slug() string {
	return q.slug
}

// Page returns the 1-based page number.
func (q GetCategoryQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetCategoryQuery) PageSize() int {
	return q.pageSize
}

// GetCategoryQueryResponse is one category page: the resolved label, the
// restaurants of the requested page, and totals for pagination controls.
type GetCategoryQueryResponse struct {
	Category    string
	Restaurants []GetRestaurantsQueryResponse
	TotalCount  int64
	TotalPages  int
}
