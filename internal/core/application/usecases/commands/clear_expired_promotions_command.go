package commands

import (
	"errors"

	"eats/internal/pkg/guard"
)

var ErrClearExpiredPromotionsCommandIsNotConstructed = errors.New(
	"ClearExpiredPromotionsCommand must be created via NewClearExpiredPromotionsCommand constructor",
)

// ClearExpiredPromotionsCommand triggers demotion of every restaurant whose
// paid promotion window has ended. Run periodically by the promotion expiry
// job.
type ClearExpiredPromotionsCommand struct {
	guard guard.ConstructorGuard
}

// NewClearExpiredPromotionsCommand creates a parameterless command that
// sweeps expired promotions.
func NewClearExpiredPromotionsCommand() ClearExpiredPromotionsCommand {
	return ClearExpiredPromotionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearExpiredPromotionsCommandIsNotConstructed if validation fails.
func (c *ClearExpiredPromotionsCommand) Validate() error {
	return c.guard.Validate(ErrClearExpiredPromotionsCommandIsNotConstructed)
}
