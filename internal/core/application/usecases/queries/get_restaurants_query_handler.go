package queries

import (
	"context"
	"database/sql"
	"time"

	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler lists restaurants for public browsing.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listings.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the listing.
// Restaurants whose promotion window covers the present moment sort ahead of
// the rest; within each group the listing is alphabetical.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]GetRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	offset := (query.Page() - 1) * query.PageSize()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			category,
			promoted_until
		FROM restaurants
		ORDER BY (promoted_until IS NOT NULL AND promoted_until > ?) DESC, name ASC
		LIMIT ? OFFSET ?
	`, now, query.PageSize(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]GetRestaurantsQueryResponse, 0)
	for rows.Next() {
		var (
			resp     GetRestaurantsQueryResponse
			id       uuid.UUID
			ownerID  uuid.UUID
			promoted sql.NullTime
		)
		if err = rows.Scan(&id, &ownerID, &resp.Name, &resp.Category, &promoted); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if promoted.Valid {
			until := promoted.Time
			resp.PromotedUntil = &until
		}

		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
