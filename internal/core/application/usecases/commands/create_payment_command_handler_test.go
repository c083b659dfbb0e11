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

func paymentUoW(payments *MockPaymentRepository, restaurants *MockRestaurantRepository) *MockPaymentUoWFactory {
	uow := new(MockPaymentUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("PaymentRepository").Return(payments)
	uow.On("RestaurantRepository").Return(restaurants)
	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

func TestCreatePaymentCommandHandler_Handle_PromotesRestaurant(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	rest := fixtureRestaurant(t, ownerID)
	require.Nil(t, rest.PromotedUntil())

	payments := new(MockPaymentRepository)
	payments.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()
	restaurants.On("Update", ctx, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
		return r.PromotedUntil() != nil
	})).Return(nil).Once()

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), "tx_123", ownerID, rest.ID())
	require.NoError(t, err)

	h := commands.NewCreatePaymentCommandHandler(paymentUoW(payments, restaurants))
	require.NoError(t, h.Handle(ctx, cmd))
	payments.AssertExpectations(t)
	restaurants.AssertExpectations(t)
}

func TestCreatePaymentCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	rest := fixtureRestaurant(t, kernel.NewUUID())

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, rest.ID()).Return(rest, nil).Once()

	payments := new(MockPaymentRepository)

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), "tx_123", kernel.NewUUID(), rest.ID())
	require.NoError(t, err)

	h := commands.NewCreatePaymentCommandHandler(paymentUoW(payments, restaurants))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	payments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreatePaymentCommand_RequiresTransactionID(t *testing.T) {
	_, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
