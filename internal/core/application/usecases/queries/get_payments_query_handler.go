package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsQueryHandler lists an owner's promotion payments.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler creates a handler for payment listings.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle executes the listing, newest payment first.
func (h GetPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsQuery,
) ([]GetPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			transaction_id,
			restaurant_id,
			created_at
		FROM payments
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]GetPaymentsQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetPaymentsQueryResponse
			id   uuid.UUID
			rest uuid.UUID
		)
		if err = rows.Scan(&id, &resp.TransactionID, &rest, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(rest[:]); err != nil {
			return nil, err
		}

		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
