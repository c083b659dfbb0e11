// Package orderrepo persists order aggregates. An order maps to one row in
// the orders table plus one row per item in order_items; the option choices
// of an item are stored as jsonb snapshots taken at order time.
package orderrepo

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Total        int64
	Status       string `gorm:"type:text;index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered dish with its option snapshot.
type OrderItemDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	DishID  uuid.UUID `gorm:"type:uuid"`
	Options []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO, error) {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		Total:        aggregate.Total(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		options, err := json.Marshal(item.Options())
		if err != nil {
			return OrderDTO{}, nil, err
		}

		items = append(items, OrderItemDTO{
			ID:      item.ID().Bytes(),
			OrderID: aggregate.ID().Bytes(),
			DishID:  item.DishID().Bytes(),
			Options: options,
		})
	}

	return dto, items, nil
}

func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		dishID, dishErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		var options []order.SelectedOption
		if len(itemDTO.Options) > 0 {
			if err := json.Unmarshal(itemDTO.Options, &options); err != nil {
				return nil, err
			}
		}

		item, itemErr := order.NewItem(itemID, dishID, options)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, restaurantID, driverID, items, dto.Total, status, dto.CreatedAt)
}
