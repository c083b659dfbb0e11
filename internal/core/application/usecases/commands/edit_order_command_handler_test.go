package commands_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/core/application/events"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	ord, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]order.Item{item}, 5000, status, time.Now().UTC(),
	)
	require.NoError(t, err)
	return ord
}

func editOrderUoW(ctx context.Context, repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestEditOrderCommandHandler_Handle_OwnerCooks(t *testing.T) {
	ctx := t.Context()
	ord := fixtureOrder(t, order.StatusPending)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", ctx, ord).Return(nil).Once()
	_, factory := editOrderUoW(ctx, repo)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, events.NewOrderUpdateChannel, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewEditOrderCommand(ord.ID(), account.RoleOwner, order.StatusCooking)
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(), publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusCooking, ord.Status())
	publisher.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_CookedNotifiesCouriers(t *testing.T) {
	ctx := t.Context()
	ord := fixtureOrder(t, order.StatusCooking)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", ctx, ord).Return(nil).Once()
	_, factory := editOrderUoW(ctx, repo)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, events.NewCookedOrderChannel,
		mock.MatchedBy(func(e events.CookedOrderEvent) bool {
			return e.Order.Status == "Cooked"
		})).Return(nil).Once()
	publisher.On("Publish", ctx, events.NewOrderUpdateChannel, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewEditOrderCommand(ord.ID(), account.RoleOwner, order.StatusCooked)
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(), publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	publisher.AssertExpectations(t)
}

// The transition gate consults only the caller's role and the target status.
// An owner who does not own the restaurant the order was placed at can still
// move it to Cooking; ownership is enforced by visibility, not by transition.
// The command carries no caller id, so there is nothing to cross-check here.
func TestEditOrderCommandHandler_Handle_UnrelatedOwnerMayCook(t *testing.T) {
	ctx := t.Context()
	ord := fixtureOrder(t, order.StatusPending)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", ctx, ord).Return(nil).Once()
	_, factory := editOrderUoW(ctx, repo)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, events.NewOrderUpdateChannel, mock.Anything).Return(nil).Once()

	// Nothing identifies the calling owner; a second owner's edit is the
	// same command as the restaurant owner's.
	cmd, err := commands.NewEditOrderCommand(ord.ID(), account.RoleOwner, order.StatusCooking)
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(), publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusCooking, ord.Status())
}

func TestEditOrderCommandHandler_Handle_CourierCannotCook(t *testing.T) {
	ctx := t.Context()
	ord := fixtureOrder(t, order.StatusPending)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewEditOrderCommand(ord.ID(), account.RoleDelivery, order.StatusCooking)
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(), new(MockEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, order.StatusPending, ord.Status())
}

func TestEditOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewEditOrderCommand(orderID, account.RoleOwner, order.StatusCooking)
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(factory, services.NewOrderAccessPolicy(), new(MockEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
