package queries

import (
	"context"
	"database/sql"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders scoped to the caller's role directly
// from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for role-scoped order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing.
// Customers are matched on the customer column, couriers on the driver
// column, and owners through a join against the restaurants they own.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where string
		args  []any
	)

	callerID := query.Caller().ID().Bytes()
	switch query.Caller().Role() {
	case account.RoleClient:
		where = "o.customer_id = ?"
		args = append(args, callerID)
	case account.RoleDelivery:
		where = "o.driver_id = ?"
		args = append(args, callerID)
	case account.RoleOwner:
		where = "r.owner_id = ?"
		args = append(args, callerID)
	default:
		return nil, errs.NewUnauthorizedError("caller not recognized")
	}

	sqlText := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.driver_id,
			o.status,
			o.total,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE ` + where
	if query.Status() != nil {
		sqlText += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	sqlText += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (GetOrdersQueryResponse, error) {
	var (
		resp     GetOrdersQueryResponse
		id       uuid.UUID
		customer uuid.UUID
		rest     uuid.UUID
		driver   uuid.NullUUID
		status   string
	)

	if err := rows.Scan(&id, &customer, &rest, &driver, &status, &resp.Total, &resp.CreatedAt); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrdersQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customer[:]); err != nil {
		return GetOrdersQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(rest[:]); err != nil {
		return GetOrdersQueryResponse{}, err
	}
	if driver.Valid {
		driverID, err := kernel.UUIDFromBytes(driver.UUID[:])
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}
		resp.DriverID = &driverID
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return resp, nil
}
