package commands

import (
	"context"
	"time"
)

// ClearExpiredPromotionsCommandHandler demotes restaurants whose promotion
// window has passed. The sweep is a single bulk update in the repository.
type ClearExpiredPromotionsCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewClearExpiredPromotionsCommandHandler creates a handler for the
// promotion expiry sweep.
func NewClearExpiredPromotionsCommandHandler(
	uowFactory CatalogUoWFactory,
) ClearExpiredPromotionsCommandHandler {
	return ClearExpiredPromotionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the sweep and returns how many restaurants were demoted.
func (h ClearExpiredPromotionsCommandHandler) Handle(
	ctx context.Context,
	command ClearExpiredPromotionsCommand,
) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cleared, err := uow.RestaurantRepository().ClearExpiredPromotions(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cleared, nil
}
