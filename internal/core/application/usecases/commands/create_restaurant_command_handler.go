package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler registers new restaurants for their owners.
type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, command CreateRestaurantCommand) error {
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

	rest, err := restaurant.NewRestaurant(
		command.RestaurantID(),
		command.OwnerID(),
		command.Name(),
		command.Category(),
	)
	if err != nil {
		return err
	}

	if err := uow.RestaurantRepository().Add(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
