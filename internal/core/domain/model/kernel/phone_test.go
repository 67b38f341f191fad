package kernel_test

import (
	"testing"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("should create valid 13-digit phone", func(t *testing.T) {
		phone, err := kernel.NewPhone("5511987654321")

		require.NoError(t, err)
		require.NoError(t, phone.Validate())
		assert.Equal(t, "5511987654321", phone.String())
	})

	t.Run("should fail with empty input", func(t *testing.T) {
		_, err := kernel.NewPhone("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with whitespace-only input", func(t *testing.T) {
		_, err := kernel.NewPhone("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when not exactly 13 digits", func(t *testing.T) {
		invalidInputs := []string{
			"551198765432",    // 12 digits
			"55119876543210",  // 14 digits
			"55 11 987654321", // separators
			"+551198765432",   // plus sign
			"abcdefghijklm",   // letters
		}

		for _, input := range invalidInputs {
			_, err := kernel.NewPhone(input)

			require.Error(t, err, "input: %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input: %q", input)
		}
	})
}

func TestPhone_IsEqual(t *testing.T) {
	t.Run("should be equal for same digits", func(t *testing.T) {
		p1, _ := kernel.NewPhone("5511987654321")
		p2, _ := kernel.NewPhone("5511987654321")

		assert.True(t, p1.IsEqual(p2))
	})

	t.Run("should not be equal for different digits", func(t *testing.T) {
		p1, _ := kernel.NewPhone("5511987654321")
		p2, _ := kernel.NewPhone("5511987654322")

		assert.False(t, p1.IsEqual(p2))
	})
}

func TestPhone_Validate(t *testing.T) {
	t.Run("should fail validation for zero value", func(t *testing.T) {
		var phone kernel.Phone

		err := phone.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPhoneIsNotConstructed, err)
	})
}
