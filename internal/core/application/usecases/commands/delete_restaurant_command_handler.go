package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// DeleteRestaurantCommandHandler removes restaurants together with their
// menus. Only the restaurant's owner may delete it. Past orders keep their
// item snapshots, so deleting a restaurant never rewrites order history.
type DeleteRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant removal.
func NewDeleteRestaurantCommandHandler(uowFactory CatalogUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant deletion command.
// The menu is deleted in the same transaction as the restaurant row.
func (h DeleteRestaurantCommandHandler) Handle(ctx context.Context, command DeleteRestaurantCommand) error {
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

	rest, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}

	if !rest.IsOwnedBy(command.OwnerID()) {
		return errs.NewUnauthorizedError("caller does not own this restaurant")
	}

	if err := uow.DishRepository().DeleteByRestaurant(ctx, command.RestaurantID()); err != nil {
		return err
	}

	if err := uow.RestaurantRepository().Delete(ctx, command.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
