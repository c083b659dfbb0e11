package account

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

const minPasswordLength = 4

// User is the account aggregate. It owns the credential material and the
// email-verification state; the role is fixed at creation and never changes.
//
// Invariants:
//   - valid unique identifier
//   - non-empty email containing "@"
//   - role is one of Client, Owner, Delivery
//   - password is stored only as a bcrypt hash
type User struct {
	id           kernel.UUID
	email        string
	passwordHash []byte
	role         Role
	verified     bool

	isConstructed bool
}

// NewUser creates a user with a freshly hashed password and an unverified
// email address.
func NewUser(id kernel.UUID, email, password string, role Role) (*User, error) {
	user := &User{isConstructed: true}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setPassword(password),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a user from persistence without re-hashing the
// stored credential.
func RestoreUser(id kernel.UUID, email string, passwordHash []byte, role Role, verified bool) (*User, error) {
	user := &User{
		passwordHash:  passwordHash,
		verified:      verified,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return user, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash, for persistence mapping only.
func (u *User) PasswordHash() []byte {
	return u.passwordHash
}

// Role returns the user's fixed role.
func (u *User) Role() Role {
	return u.role
}

// Verified reports whether the email address has been confirmed.
func (u *User) Verified() bool {
	return u.verified
}

// Caller returns the identity context this user presents to operations.
func (u *User) Caller() Caller {
	return Caller{id: u.id, role: u.role}
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}

// ChangeEmail replaces the email address and resets the verified flag, since
// the new address has not been confirmed yet.
func (u *User) ChangeEmail(email string) error {
	if err := u.setEmail(email); err != nil {
		return err
	}
	u.verified = false
	return nil
}

// ChangePassword re-hashes and replaces the credential.
func (u *User) ChangePassword(password string) error {
	return u.setPassword(password)
}

// MarkVerified confirms the current email address.
func (u *User) MarkVerified() {
	u.verified = true
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
