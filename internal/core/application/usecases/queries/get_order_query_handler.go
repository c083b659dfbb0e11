package queries

import (
	"context"
	"encoding/json"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves single orders, gated by the visibility
// policy. A caller who is no party to the order gets the same unauthorized
// error regardless of whether the order exists under someone else's account.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.OrderAccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the retrieval.
// Loads the order with the owning restaurant's owner id, rebuilds the
// aggregate, and applies the visibility policy before returning anything.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.driver_id,
			o.status,
			o.total,
			o.created_at,
			r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var (
		head    GetOrdersQueryResponse
		id      uuid.UUID
		cust    uuid.UUID
		rest    uuid.UUID
		driver  uuid.NullUUID
		status  string
		ownerID uuid.UUID
	)
	if err = rows.Scan(&id, &cust, &rest, &driver, &status, &head.Total, &head.CreatedAt, &ownerID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	rows.Close()

	if head.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if head.CustomerID, err = kernel.UUIDFromBytes(cust[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if head.RestaurantID, err = kernel.UUIDFromBytes(rest[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if driver.Valid {
		driverID, idErr := kernel.UUIDFromBytes(driver.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		head.DriverID = &driverID
	}
	if head.Status, err = order.StatusFromString(status); err != nil {
		return GetOrderQueryResponse{}, err
	}

	restaurantOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, domainItems, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	ord, err := order.RestoreOrder(
		head.ID, head.CustomerID, head.RestaurantID, head.DriverID,
		domainItems, head.Total, head.Status, head.CreatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !h.policy.CanView(query.Caller(), ord, restaurantOwnerID) {
		return GetOrderQueryResponse{}, errs.NewUnauthorizedError("order is not visible to this caller")
	}

	return GetOrderQueryResponse{
		ID:           head.ID,
		CustomerID:   head.CustomerID,
		RestaurantID: head.RestaurantID,
		DriverID:     head.DriverID,
		Status:       head.Status,
		Total:        head.Total,
		CreatedAt:    head.CreatedAt,
		Items:        items,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, []order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, dish_id, options
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var (
		items       []GetOrderItemResponse
		domainItems []order.Item
	)
	for rows.Next() {
		var (
			id          uuid.UUID
			dishID      uuid.UUID
			rawOptions  []byte
			itemOptions []order.SelectedOption
		)
		if err = rows.Scan(&id, &dishID, &rawOptions); err != nil {
			return nil, nil, err
		}
		if len(rawOptions) > 0 {
			if err = json.Unmarshal(rawOptions, &itemOptions); err != nil {
				return nil, nil, err
			}
		}

		itemID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, nil, err
		}
		itemDishID, err := kernel.UUIDFromBytes(dishID[:])
		if err != nil {
			return nil, nil, err
		}

		domainItem, err := order.NewItem(itemID, itemDishID, itemOptions)
		if err != nil {
			return nil, nil, err
		}

		domainItems = append(domainItems, domainItem)
		items = append(items, GetOrderItemResponse{
			ID:      itemID,
			DishID:  itemDishID,
			Options: itemOptions,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return items, domainItems, nil
}
