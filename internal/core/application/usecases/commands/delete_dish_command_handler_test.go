package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)
	dish := fixtureDish(t, rest.ID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", ctx, dish.ID()).Return(dish, nil).Once()
	dishes.On("Delete", ctx, dish.ID()).Return(nil).Once()

	cmd, err := commands.NewDeleteDishCommand(dish.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewDeleteDishCommandHandler(catalogUoW(restaurants, dishes))
	require.NoError(t, h.Handle(ctx, cmd))
	dishes.AssertExpectations(t)
}

func TestDeleteDishCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	rest := fixtureRestaurant(t, kernel.NewUUID())
	dish := fixtureDish(t, rest.ID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", ctx, dish.ID()).Return(dish, nil).Once()

	cmd, err := commands.NewDeleteDishCommand(dish.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewDeleteDishCommandHandler(catalogUoW(restaurants, dishes))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	dishes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteDishCommandHandler_Handle_DishNotFound(t *testing.T) {
	ctx := t.Context()
	dishID := kernel.NewUUID()

	restaurants := new(MockRestaurantRepository)
	dishes := new(MockDishRepository)
	dishes.On("Get", ctx, dishID).
		Return(nil, errs.NewObjectNotFoundError("dish", dishID.String())).Once()

	cmd, err := commands.NewDeleteDishCommand(dishID, kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewDeleteDishCommandHandler(catalogUoW(restaurants, dishes))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
