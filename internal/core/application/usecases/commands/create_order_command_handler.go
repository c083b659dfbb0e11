package commands

import (
	"context"
	"time"

	"eats/internal/core/application/events"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement. Prices the order from
// the current catalog, persists it in Pending status, and announces it to
// restaurant owner dashboards after the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Resolves the restaurant and every requested dish, computes the total from
// catalog prices and option extras, and stores the order with snapshots of
// the chosen options. Returns an object-not-found error when the restaurant
// does not exist or any dish does not belong to it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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

	dishRepo := uow.DishRepository()

	var total int64
	items := make([]order.Item, 0, len(command.Items()))
	for _, input := range command.Items() {
		dish, err := dishRepo.Get(ctx, input.DishID)
		if err != nil {
			return err
		}
		if !dish.RestaurantID().IsEqual(rest.ID()) {
			return errs.NewObjectNotFoundError("dishId", input.DishID.String())
		}

		selections := make([]restaurant.OptionSelection, 0, len(input.Options))
		selected := make([]order.SelectedOption, 0, len(input.Options))
		for _, opt := range input.Options {
			selections = append(selections, restaurant.OptionSelection{
				Name:   opt.Name,
				Choice: opt.Choice,
			})
			selected = append(selected, order.SelectedOption{
				Name:   opt.Name,
				Choice: opt.Choice,
			})
		}
		total += dish.PriceFor(selections)

		item, err := order.NewItem(kernel.NewUUID(), dish.ID(), selected)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.RestaurantID(),
		items,
		total,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// The order is committed; a failed announcement must not fail the request.
	_ = h.publisher.Publish(ctx, events.NewPendingOrderChannel, events.PendingOrderEvent{
		Order:   events.PayloadFromOrder(newOrder),
		OwnerID: rest.OwnerID().String(),
	})

	return nil
}
