package order

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when an Item was not created through the
// NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// SelectedOption is the caller's recorded pick for one dish option: the option
// name and, when the option offers choices, the chosen one.
type SelectedOption struct {
	Name   string
	Choice string
}

// Item is a snapshot of one ordered dish instance. It copies the selections
// the customer made at order time instead of referencing the dish's live
// option set, so later menu edits never change what an order says was bought.
type Item struct {
	id      kernel.UUID
	dishID  kernel.UUID
	options []SelectedOption

	isConstructed bool
}

// NewItem creates an order item snapshot for the given dish and selections.
func NewItem(id, dishID kernel.UUID, options []SelectedOption) (Item, error) {
	if err := errors.Join(id.Validate(), dishID.Validate()); err != nil {
		return Item{}, err
	}

	return Item{
		id:            id,
		dishID:        dishID,
		options:       options,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// DishID returns the identifier of the ordered dish.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Options returns the selections recorded at order time.
func (i Item) Options() []SelectedOption {
	return i.options
}
