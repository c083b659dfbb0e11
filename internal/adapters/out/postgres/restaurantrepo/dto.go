// Package restaurantrepo persists restaurant aggregates and their dishes.
// Dish options live as a jsonb document on the dish row; they are read and
// written as a whole with the dish.
package restaurantrepo

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Name          string    `gorm:"type:text"`
	Category      string    `gorm:"type:text;index"`
	PromotedUntil *time.Time
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database structure for persisting dishes.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"type:text"`
	Description  string    `gorm:"type:text"`
	Price        int64
	Options      []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for dishes.
func (DishDTO) TableName() string {
	return "dishes"
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Name:          aggregate.Name(),
		Category:      aggregate.Category(),
		PromotedUntil: aggregate.PromotedUntil(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, dto.Category, dto.PromotedUntil)
}

func dishFromDomain(aggregate *restaurant.Dish) (DishDTO, error) {
	options, err := json.Marshal(aggregate.Options())
	if err != nil {
		return DishDTO{}, err
	}

	return DishDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Price:        aggregate.Price(),
		Options:      options,
	}, nil
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var options []restaurant.DishOption
	if len(dto.Options) > 0 {
		if err := json.Unmarshal(dto.Options, &options); err != nil {
			return nil, err
		}
	}

	return restaurant.RestoreDish(id, restaurantID, dto.Name, dto.Description, dto.Price, options)
}
