package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validItems := []commands.OrderItemInput{{DishID: kernel.NewUUID()}}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validItems)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("empty items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("invalid dish id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderItemInput{{DishID: kernel.UUID{}}})
		require.Error(t, err)
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, validItems)
		require.Error(t, err)
	})

	t.Run("zero value fails validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
