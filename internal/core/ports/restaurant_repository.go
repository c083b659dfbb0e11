package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// Delete removes a restaurant. The caller is responsible for deleting
	// the menu in the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error

	// ClearExpiredPromotions unsets every promotion deadline lying before
	// now and returns how many restaurants were affected.
	ClearExpiredPromotions(ctx context.Context, now time.Time) (int64, error)
}

// DishRepository defines the persistence contract for dishes.
type DishRepository interface {
	// Add persists a new dish.
	Add(ctx context.Context, aggregate *restaurant.Dish) error

	// Update persists changes to an existing dish.
	Update(ctx context.Context, aggregate *restaurant.Dish) error

	// Get retrieves a dish by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error)

	// Delete removes a dish from its restaurant's menu.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByRestaurant removes every dish of the given restaurant.
	DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) error
}
