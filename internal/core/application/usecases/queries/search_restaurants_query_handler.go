package queries

import (
	"context"
	"database/sql"

	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchRestaurantsQueryHandler searches restaurants by name.
type SearchRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewSearchRestaurantsQueryHandler creates a handler for restaurant search.
func NewSearchRestaurantsQueryHandler(db *gorm.DB) SearchRestaurantsQueryHandler {
	return SearchRestaurantsQueryHandler{db: db}
}

// Handle executes the search. Matching is a case-insensitive substring match
// on the name; results are alphabetical. An empty page is a valid result,
// not an error.
func (h SearchRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SearchRestaurantsQuery,
) ([]GetRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.PageSize()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			category,
			promoted_until
		FROM restaurants
		WHERE name ILIKE '%' || ? || '%'
		ORDER BY name ASC
		LIMIT ? OFFSET ?
	`, query.Term(), query.PageSize(), offset).Rows()
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
