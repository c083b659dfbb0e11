// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest unit of work it can operate on, so the
// mocks in tests only need to supply the repositories the handler touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// VerificationRepoFactory provides access to the verification repository
	// within a transaction.
	VerificationRepoFactory interface {
		VerificationRepository() ports.VerificationRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository
	// within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DishRepoFactory provides access to the dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a
	// transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// AccountUoW manages transactions for account operations: users plus
	// their email verification codes.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		VerificationRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CatalogUoW manages transactions for restaurant and dish operations.
	CatalogUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order operations. Order creation
	// reads the restaurant and its dishes to price the order, so both
	// catalog repositories ride in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment operations. Recording a
	// payment promotes the paid-for restaurant in the same transaction.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		RestaurantRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
