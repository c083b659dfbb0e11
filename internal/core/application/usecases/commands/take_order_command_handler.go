package commands

import (
	"context"

	"eats/internal/core/application/events"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// TakeOrderCommandHandler assigns couriers to orders on a first-claim-wins
// basis. The decisive check happens in the repository as a conditional write
// on the empty driver column, so two couriers racing for the same order
// resolve to exactly one winner regardless of what each of them read first.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewTakeOrderCommandHandler creates a handler for courier order claims.
func NewTakeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the claim.
// Loads the order, rejects claims on orders that already have a courier,
// then performs the atomic claim. The pre-read only produces a friendlier
// error for claims that are already lost; correctness does not depend on it.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, command TakeOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if ord.DriverID() != nil {
		return errs.NewConflictError("order already has a driver")
	}

	if err := orderRepo.ClaimForDriver(ctx, command.OrderID(), command.DriverID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := ord.AssignDriver(command.DriverID()); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, events.NewOrderUpdateChannel, events.OrderUpdateEvent{
		Order: events.PayloadFromOrder(ord),
	})

	return nil
}
