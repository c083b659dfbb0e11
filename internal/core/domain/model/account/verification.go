package account

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// ErrVerificationIsNotConstructed is returned when a Verification was not
// created through a constructor.
var ErrVerificationIsNotConstructed = errors.New("Verification must be created via NewVerification or RestoreVerification constructor")

// Verification is a one-time email confirmation code bound to a user. A new
// code is issued on account creation and again whenever the email changes;
// confirming the code consumes it.
type Verification struct {
	id     kernel.UUID
	code   string
	userID kernel.UUID

	isConstructed bool
}

// NewVerification issues a fresh code for the given user.
func NewVerification(id kernel.UUID, userID kernel.UUID) (*Verification, error) {
	return RestoreVerification(id, kernel.NewUUID().String(), userID)
}

// RestoreVerification reconstructs a verification from persistence.
func RestoreVerification(id kernel.UUID, code string, userID kernel.UUID) (*Verification, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, ErrVerificationIsNotConstructed
	}

	return &Verification{
		id:            id,
		code:          code,
		userID:        userID,
		isConstructed: true,
	}, nil
}

// Validate ensures the verification was created through a constructor.
func (v *Verification) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVerificationIsNotConstructed
	}
	return nil
}

// ID returns the verification's unique identifier.
func (v *Verification) ID() kernel.UUID {
	return v.id
}

// Code returns the one-time confirmation code.
func (v *Verification) Code() string {
	return v.code
}

// UserID returns the identifier of the user being verified.
func (v *Verification) UserID() kernel.UUID {
	return v.userID
}
