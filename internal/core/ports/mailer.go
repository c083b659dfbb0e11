package ports

import (
	"context"
)

// Mailer delivers email verification codes. Delivery is best effort: account
// creation succeeds even when the mail cannot be sent, and the code can be
// re-issued by editing the profile.
type Mailer interface {
	SendVerification(ctx context.Context, email, code string) error
}
