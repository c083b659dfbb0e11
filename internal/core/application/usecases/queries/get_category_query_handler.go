package queries

import (
	"context"
	"database/sql"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoryQueryHandler resolves a category slug to its restaurants.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler creates a handler for category lookups.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle executes the lookup. A slug that resolves to no restaurants is
// object-not-found: categories exist only through the restaurants carrying
// them. An in-range page past the last restaurant comes back empty but keeps
// the totals.
func (h GetCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetCategoryQuery,
) (GetCategoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCategoryQueryResponse{}, err
	}

	var (
		category string
		total    int64
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT category, COUNT(*)
		FROM restaurants
		WHERE lower(replace(category, ' ', '-')) = lower(?)
		GROUP BY category
	`, query.Slug()).Row()
	if err := row.Scan(&category, &total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCategoryQueryResponse{}, errs.NewObjectNotFoundError("category", query.Slug())
		}
		return GetCategoryQueryResponse{}, err
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
		WHERE lower(replace(category, ' ', '-')) = lower(?)
		ORDER BY name ASC
		LIMIT ? OFFSET ?
	`, query.Slug(), query.PageSize(), offset).Rows()
	if err != nil {
		return GetCategoryQueryResponse{}, err
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
			return GetCategoryQueryResponse{}, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetCategoryQueryResponse{}, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return GetCategoryQueryResponse{}, err
		}
		if promoted.Valid {
			until := promoted.Time
			resp.PromotedUntil = &until
		}

		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return GetCategoryQueryResponse{}, err
	}

	totalPages := int((total + int64(query.PageSize()) - 1) / int64(query.PageSize()))

	return GetCategoryQueryResponse{
		Category:    category,
		Restaurants: restaurants,
		TotalCount:  total,
		TotalPages:  totalPages,
	}, nil
}
