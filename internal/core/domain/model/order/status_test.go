package order_test

import (
	"testing"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Paid, "Paid"},
		{order.Shipped, "Shipped"},
		{order.Cancelled, "Cancelled"},
		{order.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Paid, order.Shipped, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse case-insensitively", func(t *testing.T) {
		tests := []struct {
			input    string
			expected order.Status
		}{
			{"Pending", order.Pending},
			{"pending", order.Pending},
			{"PAID", order.Paid},
			{"Paid", order.Paid},
			{"shipped", order.Shipped},
			{"cAnCeLlEd", order.Cancelled},
		}

		for _, tt := range tests {
			s, err := order.StatusFromString(tt.input)

			require.NoError(t, err, "input: %q", tt.input)
			assert.Equal(t, tt.expected, s, "input: %q", tt.input)
		}
	})

	t.Run("should fail on unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "Unknown", "Delivered", "paid "} {
			_, err := order.StatusFromString(input)

			require.Error(t, err, "input: %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "invalid order status")
		}
	})
}

// TestStatus_TransitionTable exercises every source/target combination of the
// state machine through the transition methods.
func TestStatus_TransitionTable(t *testing.T) {
	t.Run("Pay", func(t *testing.T) {
		next, err := order.Pending.Pay()
		require.NoError(t, err)
		assert.Equal(t, order.Paid, next)

		_, err = order.Paid.Pay()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already paid")

		_, err = order.Shipped.Pay()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot pay a shipped order")

		_, err = order.Cancelled.Pay()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot pay a cancelled order")
	})

	t.Run("Ship", func(t *testing.T) {
		next, err := order.Paid.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)

		for _, s := range []order.Status{order.Pending, order.Shipped, order.Cancelled} {
			_, err = s.Ship()
			require.Error(t, err, "from: %s", s)
			assert.Contains(t, err.Error(), "only paid orders can be shipped")
		}
	})

	t.Run("Cancel", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Paid} {
			next, err := s.Cancel()
			require.NoError(t, err, "from: %s", s)
			assert.Equal(t, order.Cancelled, next)
		}

		_, err := order.Shipped.Cancel()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel a shipped order")

		_, err = order.Cancelled.Cancel()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already cancelled")
	})

	t.Run("Unknown fails every transition", func(t *testing.T) {
		_, err := order.Unknown.Pay()
		require.Error(t, err)

		_, err = order.Unknown.Ship()
		require.Error(t, err)

		_, err = order.Unknown.Cancel()
		require.Error(t, err)
	})
}
