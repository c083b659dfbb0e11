package orderrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its item snapshots.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order. Items are immutable snapshots
// and are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var items []OrderItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&items, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// ClaimForDriver assigns the driver to the order iff the driver column is
// still empty. The condition and the write happen in one statement, so of
// two concurrent claims exactly one sees RowsAffected == 1.
func (r *GormOrderRepository) ClaimForDriver(ctx context.Context, orderID, driverID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL", orderID.Bytes()).
		Update("driver_id", driverID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order already has a driver")
	}

	return nil
}
