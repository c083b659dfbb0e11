package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// EditRestaurantCommandHandler updates restaurant details. Only the
// restaurant's owner may edit it.
type EditRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewEditRestaurantCommandHandler creates a handler for restaurant updates.
func NewEditRestaurantCommandHandler(uowFactory CatalogUoWFactory) EditRestaurantCommandHandler {
	return EditRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant update command.
// Returns object-not-found when the restaurant does not exist and
// unauthorized when the caller does not own it.
func (h EditRestaurantCommandHandler) Handle(ctx context.Context, command EditRestaurantCommand) error {
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

	if command.Name() != "" {
		if err := rest.Rename(command.Name()); err != nil {
			return err
		}
	}
	if command.Category() != "" {
		rest.ChangeCategory(command.Category())
	}

	if err := uow.RestaurantRepository().Update(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
