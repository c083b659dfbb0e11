package order_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), []order.SelectedOption{
		{Name: "Size", Choice: "Large"},
	})
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{newItem(t)}, 12000, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending without a driver", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.DriverID())
		assert.Equal(t, int64(12000), o.Total())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, 0, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative totals", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{newItem(t)}, -1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{{}}, 100, time.Now())
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.ChangeStatus(order.StatusCooking))
	assert.Equal(t, order.StatusCooking, o.Status())

	require.NoError(t, o.ChangeStatus(order.StatusDelivered))
	assert.Equal(t, order.StatusDelivered, o.Status())

	err := o.ChangeStatus(order.StatusUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.StatusDelivered, o.Status())
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("first claim wins", func(t *testing.T) {
		o := newOrder(t)
		first := kernel.NewUUID()

		require.NoError(t, o.AssignDriver(first))
		require.NotNil(t, o.DriverID())
		assert.True(t, first.IsEqual(*o.DriverID()))

		err := o.AssignDriver(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrDriverAlreadyAssigned)
		assert.True(t, first.IsEqual(*o.DriverID()), "assignment is immutable")
	})

	t.Run("rejects invalid driver id", func(t *testing.T) {
		o := newOrder(t)
		require.Error(t, o.AssignDriver(kernel.UUID{}))
		assert.Nil(t, o.DriverID())
	})
}

func TestRestoreOrder(t *testing.T) {
	driverID := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &driverID,
		[]order.Item{newItem(t)}, 24000, order.StatusPickedUp, createdAt)

	require.NoError(t, err)
	assert.Equal(t, order.StatusPickedUp, o.Status())
	require.NotNil(t, o.DriverID())
	assert.True(t, driverID.IsEqual(*o.DriverID()))
	assert.True(t, o.CreatedAt().Equal(createdAt))

	_, err = order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]order.Item{newItem(t)}, 24000, order.StatusUnknown, createdAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatusFromString(t *testing.T) {
	for name, want := range map[string]order.Status{
		"Pending":   order.StatusPending,
		"Cooking":   order.StatusCooking,
		"Cooked":    order.StatusCooked,
		"PickedUp":  order.StatusPickedUp,
		"Delivered": order.StatusDelivered,
	} {
		got, err := order.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := order.StatusFromString("Rejected")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.StatusFromString("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
