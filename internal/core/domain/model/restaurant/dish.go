package restaurant

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through NewDish or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")

// DishChoice is one selectable value of a dish option, optionally carrying an
// additive price. A zero Extra means the choice is free.
type DishChoice struct {
	Name  string
	Extra int64
}

// DishOption is a configurable aspect of a dish ("Size", "Spiciness"). An
// option prices a selection through at most one mechanism: either its own flat
// Extra, or the Extra of the selected choice. When the flat Extra is set it
// wins and the choices are not consulted.
type DishOption struct {
	Name    string
	Extra   int64
	Choices []DishChoice
}

// OptionSelection is a caller's pick of one option, optionally naming a choice.
type OptionSelection struct {
	Name   string
	Choice string
}

// Dish is a menu entry of a restaurant with a base price and its option set.
//
// Invariants:
//   - base price is positive
//   - option and choice extras are never negative, so a computed item price
//     can never fall below the base price
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        int64
	options      []DishOption

	isConstructed bool
}

// NewDish creates a dish on the given restaurant's menu.
func NewDish(id, restaurantID kernel.UUID, name, description string, price int64, options []DishOption) (*Dish, error) {
	d := &Dish{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setName(name),
		d.setPrice(price),
		d.setOptions(options),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish reconstructs a dish from persistence.
func RestoreDish(id, restaurantID kernel.UUID, name, description string, price int64, options []DishOption) (*Dish, error) {
	return NewDish(id, restaurantID, name, description, price, options)
}

// Validate ensures the dish was created through a constructor.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish's description text.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the base price before option extras.
func (d *Dish) Price() int64 {
	return d.price
}

// Options returns the dish's option set.
func (d *Dish) Options() []DishOption {
	return d.options
}

// Rename changes the dish's display name.
func (d *Dish) Rename(name string) error {
	return d.setName(name)
}

// ChangeDescription replaces the dish's description text.
func (d *Dish) ChangeDescription(description string) {
	d.description = description
}

// ChangePrice sets a new base price.
func (d *Dish) ChangePrice(price int64) error {
	return d.setPrice(price)
}

// ReplaceOptions swaps the dish's option set. Orders already placed keep the
// option snapshot they were priced with.
func (d *Dish) ReplaceOptions(options []DishOption) error {
	return d.setOptions(options)
}

// PriceFor computes the price of one ordered instance of this dish for the
// given selections: the base price plus, per selected option, the option's
// flat extra when it carries one, otherwise the extra of the named choice.
// A selection that matches neither an extra nor a known choice adds nothing.
func (d *Dish) PriceFor(selections []OptionSelection) int64 {
	total := d.price
	for _, sel := range selections {
		opt, ok := d.findOption(sel.Name)
		if !ok {
			continue
		}
		if opt.Extra != 0 {
			total += opt.Extra
			continue
		}
		for _, choice := range opt.Choices {
			if choice.Name == sel.Choice {
				total += choice.Extra
				break
			}
		}
	}
	return total
}

func (d *Dish) findOption(name string) (DishOption, bool) {
	for _, opt := range d.options {
		if opt.Name == name {
			return opt, true
		}
	}
	return DishOption{}, false
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	d.restaurantID = restaurantID
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setOptions(options []DishOption) error {
	for _, opt := range options {
		if opt.Name == "" {
			return errs.NewValueIsRequiredError("option name")
		}
		if opt.Extra < 0 {
			return errs.NewValueIsInvalidErrorWithCause("option extra",
				fmt.Errorf("option %q has a negative extra", opt.Name))
		}
		for _, choice := range opt.Choices {
			if choice.Name == "" {
				return errs.NewValueIsRequiredError("choice name")
			}
			if choice.Extra < 0 {
				return errs.NewValueIsInvalidErrorWithCause("choice extra",
					fmt.Errorf("choice %q of option %q has a negative extra", choice.Name, opt.Name))
			}
		}
	}
	d.options = options
	return nil
}
