package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// EditDishCommandHandler updates dishes. The owner check goes through the
// dish's restaurant: only the owner of that restaurant may edit its menu.
type EditDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewEditDishCommandHandler creates a handler for dish updates.
func NewEditDishCommandHandler(uowFactory CatalogUoWFactory) EditDishCommandHandler {
	return EditDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish update command.
// Returns object-not-found when the dish does not exist and unauthorized
// when the caller does not own the dish's restaurant.
func (h EditDishCommandHandler) Handle(ctx context.Context, command EditDishCommand) error {
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

	if command.Name() != "" {
		if err := dish.Rename(command.Name()); err != nil {
			return err
		}
	}
	if command.Description() != "" {
		dish.ChangeDescription(command.Description())
	}
	if command.Price() != nil {
		if err := dish.ChangePrice(*command.Price()); err != nil {
			return err
		}
	}
	if command.HasOptions() {
		if err := dish.ReplaceOptions(command.Options()); err != nil {
			return err
		}
	}

	if err := uow.DishRepository().Update(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
