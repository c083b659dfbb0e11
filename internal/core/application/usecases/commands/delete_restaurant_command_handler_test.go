package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteRestaurantCommandHandler_Handle_RemovesMenuToo(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	restaurants.On("Delete", ctx, rest.ID()).Return(nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("DeleteByRestaurant", ctx, rest.ID()).Return(nil).Once()

	cmd, err := commands.NewDeleteRestaurantCommand(rest.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewDeleteRestaurantCommandHandler(catalogUoW(restaurants, dishes))
	require.NoError(t, h.Handle(ctx, cmd))
	restaurants.AssertExpectations(t)
	dishes.AssertExpectations(t)
}

func TestDeleteRestaurantCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	rest := fixtureRestaurant(t, kernel.NewUUID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	dishes := new(MockDishRepository)

	cmd, err := commands.NewDeleteRestaurantCommand(rest.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewDeleteRestaurantCommandHandler(catalogUoW(restaurants, dishes))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	restaurants.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	dishes.AssertNotCalled(t, "DeleteByRestaurant", mock.Anything, mock.Anything)
}

func TestDeleteRestaurantCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).
		Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID.String())).Once()

	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID, kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewDeleteRestaurantCommandHandler(catalogUoW(restaurants, new(MockDishRepository)))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
