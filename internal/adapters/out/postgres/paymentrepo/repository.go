// Package paymentrepo persists promotion payment records. Payments are an
// append-only ledger; records are never updated or deleted.
package paymentrepo

import (
	"context"
	"time"

	"eats/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID string    `gorm:"type:text"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add saves a new payment record.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		TransactionID: aggregate.TransactionID(),
		UserID:        aggregate.UserID().Bytes(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
