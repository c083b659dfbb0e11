package restaurantrepo

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing restaurant. Uses a full-row save so a
// cleared promotion deadline is written back as NULL.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// Delete removes a restaurant row.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}

	return nil
}

// ClearExpiredPromotions unsets every promotion deadline before now.
func (r *GormRestaurantRepository) ClearExpiredPromotions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("promoted_until IS NOT NULL AND promoted_until < ?", now).
		Update("promoted_until", nil)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// GormDishRepository implements DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// Add saves a new dish.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := dishFromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing dish.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := dishFromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return dishToDomain(dto)
}

// Delete removes a dish row.
func (r *GormDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DishDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", id.String())
	}

	return nil
}

// DeleteByRestaurant removes the whole menu of a restaurant. Deleting no
// rows is not an error; a restaurant may have no dishes yet.
func (r *GormDishRepository) DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&DishDTO{}, "restaurant_id = ?", restaurantID.Bytes()).Error
}
