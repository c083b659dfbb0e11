package restaurant

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

// Restaurant is the catalog aggregate root for one venue. Every restaurant is
// owned by exactly one account with the Owner role; the dishes of its menu
// reference it by id.
//
// A restaurant may carry a promotion deadline. While the deadline lies in the
// future the restaurant is ranked first in public listings; a scheduled job
// clears deadlines that have passed.
type Restaurant struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	name          string
	category      string
	promotedUntil *time.Time

	isConstructed bool
}

// NewRestaurant creates a restaurant for the given owner.
func NewRestaurant(id, ownerID kernel.UUID, name, category string) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.category = category
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id, ownerID kernel.UUID, name, category string, promotedUntil *time.Time) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, category)
	if err != nil {
		return nil, err
	}
	r.promotedUntil = promotedUntil
	return r, nil
}

// Validate ensures the restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the owning account.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Category returns the restaurant's category label.
func (r *Restaurant) Category() string {
	return r.category
}

// PromotedUntil returns the promotion deadline, or nil when not promoted.
func (r *Restaurant) PromotedUntil() *time.Time {
	return r.promotedUntil
}

// IsOwnedBy reports whether the given account owns this restaurant.
func (r *Restaurant) IsOwnedBy(ownerID kernel.UUID) bool {
	return r.ownerID.IsEqual(ownerID)
}

// Rename changes the restaurant's display name.
func (r *Restaurant) Rename(name string) error {
	return r.setName(name)
}

// ChangeCategory moves the restaurant to another category label.
func (r *Restaurant) ChangeCategory(category string) {
	r.category = category
}

// Promote extends the promotion deadline to the given instant.
func (r *Restaurant) Promote(until time.Time) error {
	if until.IsZero() {
		return errs.NewValueIsRequiredError("until")
	}
	r.promotedUntil = &until
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
