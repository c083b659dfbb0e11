package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantQueryHandler retrieves one restaurant with its menu.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueryHandler creates a handler for single-restaurant
// retrieval.
func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle executes the retrieval.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (GetRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			category,
			promoted_until
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetRestaurantQueryResponse{}, err
		}
		return GetRestaurantQueryResponse{},
			errs.NewObjectNotFoundError("restaurantId", query.RestaurantID().String())
	}

	var (
		resp     GetRestaurantQueryResponse
		id       uuid.UUID
		ownerID  uuid.UUID
		promoted sql.NullTime
	)
	if err = rows.Scan(&id, &ownerID, &resp.Name, &resp.Category, &promoted); err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	rows.Close()

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	if promoted.Valid {
		until := promoted.Time
		resp.PromotedUntil = &until
	}

	if resp.Menu, err = h.loadMenu(ctx, query.RestaurantID()); err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	return resp, nil
}

func (h GetRestaurantQueryHandler) loadMenu(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]GetRestaurantDishResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			options
		FROM dishes
		WHERE restaurant_id = ?
		ORDER BY name ASC
	`, restaurantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]GetRestaurantDishResponse, 0)
	for rows.Next() {
		var (
			dish    GetRestaurantDishResponse
			id      uuid.UUID
			options []byte
		)
		if err = rows.Scan(&id, &dish.Name, &dish.Description, &dish.Price, &options); err != nil {
			return nil, err
		}

		if dish.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if len(options) > 0 {
			var opts []restaurant.DishOption
			if err = json.Unmarshal(options, &opts); err != nil {
				return nil, err
			}
			dish.Options = opts
		}

		menu = append(menu, dish)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
