package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"
)

// promotionPeriod is how long a single promotion payment keeps a restaurant
// boosted in listings.
const promotionPeriod = 7 * 24 * time.Hour

// CreatePaymentCommandHandler records promotion payments and applies the
// promotion window to the paid-for restaurant in the same transaction.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for promotion payments.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
// Returns object-not-found when the restaurant does not exist and
// unauthorized when the caller does not own it.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, command CreatePaymentCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	rest, err := restaurantRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}

	if !rest.IsOwnedBy(command.OwnerID()) {
		return errs.NewUnauthorizedError("caller does not own this restaurant")
	}

	now := time.Now().UTC()
	record, err := payment.NewPayment(
		command.PaymentID(),
		command.TransactionID(),
		command.OwnerID(),
		command.RestaurantID(),
		now,
	)
	if err != nil {
		return err
	}

	if err := uow.PaymentRepository().Add(ctx, record); err != nil {
		return err
	}

	if err := rest.Promote(now.Add(promotionPeriod)); err != nil {
		return err
	}

	if err := restaurantRepo.Update(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
