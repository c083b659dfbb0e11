package commands

import (
	"context"

	"eats/internal/core/application/events"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditOrderCommandHandler moves orders through the cooking and delivery
// stages. The role-to-status table lives in services.OrderAccessPolicy; this
// handler persists the admitted transition and fans the update out.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	publisher  ports.EventPublisher
}

// NewEditOrderCommandHandler creates a handler for order status changes.
func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
	publisher ports.EventPublisher,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// Loads the order, checks the caller's role against the requested target
// status, persists the transition and publishes the update. When an owner
// marks an order cooked, couriers are additionally notified on the cooked
// channel.
func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) error {
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

	if !h.policy.CanTransition(command.CallerRole(), command.Status()) {
		return errs.NewUnauthorizedError("caller cannot set this order status")
	}

	if err := ord.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	payload := events.PayloadFromOrder(ord)
	if command.CallerRole() == account.RoleOwner && command.Status() == order.StatusCooked {
		_ = h.publisher.Publish(ctx, events.NewCookedOrderChannel, events.CookedOrderEvent{
			Order: payload,
		})
	}
	_ = h.publisher.Publish(ctx, events.NewOrderUpdateChannel, events.OrderUpdateEvent{
		Order: payload,
	})

	return nil
}
