package queries

import (
	"context"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler retrieves account profiles.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile retrieval.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the retrieval.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, role, verified
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetProfileQueryResponse{}, err
		}
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundError("userId", query.UserID().String())
	}

	var (
		resp GetProfileQueryResponse
		id   uuid.UUID
		role string
	)
	if err = rows.Scan(&id, &resp.Email, &role, &resp.Verified); err != nil {
		return GetProfileQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetProfileQueryResponse{}, err
	}
	if resp.Role, err = account.RoleFromString(role); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return resp, nil
}
