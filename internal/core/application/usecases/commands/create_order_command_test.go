package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid fields", func(t *testing.T) {
		customerID := kernel.NewUUID()
		items := []commands.OrderItemSpec{
			{ProductID: kernel.NewUUID(), Quantity: 2, UnitPrice: decimal.NewFromInt(25)},
		}

		cmd, err := commands.NewCreateOrderCommand(customerID, items)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, customerID, cmd.CustomerID())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should allow empty item list", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Items())
	})

	t.Run("should fail with zero customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero product id in items", func(t *testing.T) {
		items := []commands.OrderItemSpec{
			{ProductID: kernel.UUID{}, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		}

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), items)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
