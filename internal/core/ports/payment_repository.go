package ports

import (
	"context"

	"eats/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error
}
