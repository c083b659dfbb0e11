package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCategoriesQueryHandler lists the categories in use.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category listings.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the listing. The slug is derived from the label the same
// way the category lookup derives it, so every listed slug resolves.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]GetCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			lower(replace(category, ' ', '-')) AS slug,
			COUNT(*) AS restaurant_count
		FROM restaurants
		WHERE category <> ''
		GROUP BY category
		ORDER BY category ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]GetCategoriesQueryResponse, 0)
	for rows.Next() {
		var resp GetCategoriesQueryResponse
		if err = rows.Scan(&resp.Name, &resp.Slug, &resp.RestaurantCount); err != nil {
			return nil, err
		}
		categories = append(categories, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
