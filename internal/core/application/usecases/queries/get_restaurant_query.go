package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/guard"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery fetches one restaurant together with its menu. The
// lookup is public; it backs the venue page a customer orders from.
type GetRestaurantQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a single-restaurant lookup query.
func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantQueryIsNotConstructed if validation fails.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier being looked up.
func (q GetRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantDishResponse is one menu entry of the response.
type GetRestaurantDishResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int64
	Options     []restaurant.DishOption
}

// GetRestaurantQueryResponse is a restaurant with its full menu.
type GetRestaurantQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Name          string
	Category      string
	PromotedUntil *time.Time
	Menu          []GetRestaurantDishResponse
}
