package ports

import (
	"context"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. Fails when the email is already taken.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}

// VerificationRepository defines the persistence contract for one-time email
// verification codes.
type VerificationRepository interface {
	// Add persists a new verification code.
	Add(ctx context.Context, aggregate *account.Verification) error

	// GetByCode retrieves a verification by its one-time code.
	GetByCode(ctx context.Context, code string) (*account.Verification, error)

	// Delete removes a consumed verification.
	Delete(ctx context.Context, id kernel.UUID) error
}
