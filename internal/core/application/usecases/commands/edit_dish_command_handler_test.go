package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditDishCommandHandler_Handle_PriceAndOptions(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)
	dish := fixtureDish(t, rest.ID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", ctx, dish.ID()).Return(dish, nil).Once()
	dishes.On("Update", ctx, mock.MatchedBy(func(d *restaurant.Dish) bool {
		return d.Price() == 12000 && len(d.Options()) == 1 && d.Options()[0].Name == "Spice"
	})).Return(nil).Once()

	price := int64(12000)
	cmd, err := commands.NewEditDishCommand(dish.ID(), ownerID, "", "", &price,
		[]restaurant.DishOption{{Name: "Spice", Extra: 500}})
	require.NoError(t, err)

	h := commands.NewEditDishCommandHandler(catalogUoW(restaurants, dishes))
	require.NoError(t, h.Handle(ctx, cmd))
	dishes.AssertExpectations(t)
}

func TestEditDishCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	rest := fixtureRestaurant(t, kernel.NewUUID())
	dish := fixtureDish(t, rest.ID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", ctx, dish.ID()).Return(dish, nil).Once()

	cmd, err := commands.NewEditDishCommand(dish.ID(), kernel.NewUUID(), "Quesadilla", "", nil, nil)
	require.NoError(t, err)

	h := commands.NewEditDishCommandHandler(catalogUoW(restaurants, dishes))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	dishes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditDishCommandHandler_Handle_InvalidPriceRejected(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)
	dish := fixtureDish(t, rest.ID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", ctx, dish.ID()).Return(dish, nil).Once()

	price := int64(0)
	cmd, err := commands.NewEditDishCommand(dish.ID(), ownerID, "", "", &price, nil)
	require.NoError(t, err)

	h := commands.NewEditDishCommandHandler(catalogUoW(restaurants, dishes))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	dishes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewEditDishCommand_NothingToEdit(t *testing.T) {
	_, err := commands.NewEditDishCommand(kernel.NewUUID(), kernel.NewUUID(), "", "", nil, nil)
	require.ErrorIs(t, err, commands.ErrNothingToEditDish)
}
