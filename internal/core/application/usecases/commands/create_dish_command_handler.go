package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// CreateDishCommandHandler adds dishes to restaurants. Only the restaurant's
// owner may add dishes to it.
type CreateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish creation command.
// Returns object-not-found when the restaurant does not exist and
// unauthorized when the caller does not own it.
func (h CreateDishCommandHandler) Handle(ctx context.Context, command CreateDishCommand) error {
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

	dish, err := restaurant.NewDish(
		command.DishID(),
		command.RestaurantID(),
		command.Name(),
		command.Description(),
		command.Price(),
		command.Options(),
	)
	if err != nil {
		return err
	}

	if err := uow.DishRepository().Add(ctx, dish); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
