package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// DeleteDishCommandHandler removes dishes from menus. The owner check goes
// through the dish's restaurant, the same way dish edits are gated. Orders
// already placed keep their priced item snapshots.
type DeleteDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteDishCommandHandler creates a handler for dish removal.
func NewDeleteDishCommandHandler(uowFactory CatalogUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish deletion command.
func (h DeleteDishCommandHandler) Handle(ctx context.Context, command DeleteDishCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dish, err := uow.DishRepository().Get(ctx, command.DishID())
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, dish.RestaurantID())
	if err != nil {
		return err
	}

	if !rest.IsOwnedBy(command.OwnerID()) {
		return errs.NewUnauthorizedError("caller does not own this restaurant")
	}

	if err := uow.DishRepository().Delete(ctx, command.DishID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
