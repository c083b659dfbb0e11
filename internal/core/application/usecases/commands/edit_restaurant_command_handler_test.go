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

func TestEditRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	restaurants.On("Update", ctx, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
		return r.Name() == "Taco Supremo" && r.Category() == "Tex-Mex"
	})).Return(nil).Once()

	cmd, err := commands.NewEditRestaurantCommand(rest.ID(), ownerID, "Taco Supremo", "Tex-Mex")
	require.NoError(t, err)

	h := commands.NewEditRestaurantCommandHandler(catalogUoW(restaurants, new(MockDishRepository)))
	require.NoError(t, h.Handle(ctx, cmd))
	restaurants.AssertExpectations(t)
}

func TestEditRestaurantCommandHandler_Handle_CategoryOnly(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	restaurants.On("Update", ctx, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
		return r.Name() == "Taco Bueno" && r.Category() == "Tex-Mex"
	})).Return(nil).Once()

	cmd, err := commands.NewEditRestaurantCommand(rest.ID(), ownerID, "", "Tex-Mex")
	require.NoError(t, err)

	h := commands.NewEditRestaurantCommandHandler(catalogUoW(restaurants, new(MockDishRepository)))
	require.NoError(t, h.Handle(ctx, cmd))
	restaurants.AssertExpectations(t)
}

func TestEditRestaurantCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	rest := fixtureRestaurant(t, kernel.NewUUID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()

	cmd, err := commands.NewEditRestaurantCommand(rest.ID(), kernel.NewUUID(), "Taco Supremo", "")
	require.NoError(t, err)

	h := commands.NewEditRestaurantCommandHandler(catalogUoW(restaurants, new(MockDishRepository)))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	restaurants.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewEditRestaurantCommand_NothingToEdit(t *testing.T) {
	_, err := commands.NewEditRestaurantCommand(kernel.NewUUID(), kernel.NewUUID(), "", "")
	require.ErrorIs(t, err, commands.ErrNothingToEditRestaurant)
}
