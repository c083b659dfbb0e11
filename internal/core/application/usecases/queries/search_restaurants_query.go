package queries

import (
	"errors"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrSearchRestaurantsQueryIsNotConstructed = errors.New(
	"SearchRestaurantsQuery must be created via NewSearchRestaurantsQuery constructor",
)

// SearchRestaurantsQuery finds restaurants whose name contains the search
// term, case-insensitively. Public and paginated like the listing.
type SearchRestaurantsQuery struct { //nolint:recvcheck //using for validation
	term     string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewSearchRestaurantsQuery creates a name search query. The term must be
// non-empty; page numbering starts at 1 and a zero pageSize selects the
// default.
func NewSearchRestaurantsQuery(term string, page, pageSize int) (SearchRestaurantsQuery, error) {
	if term == "" {
		return SearchRestaurantsQuery{}, errs.NewValueIsRequiredError("term")
	}
	if page < 1 {
		return SearchRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return SearchRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return SearchRestaurantsQuery{
		term:     term,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchRestaurantsQueryIsNotConstructed if validation fails.
func (q SearchRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRestaurantsQueryIsNotConstructed)
}

// Term returns the search term.
func (q SearchRestaurantsQuery) Term() string {
	return q.term
}

// Page returns the 1-based page number.
func (q SearchRestaurantsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q SearchRestaurantsQuery) PageSize() int {
	return q.pageSize
}
