package customer_test

import (
	"testing"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact(t *testing.T) (kernel.Email, kernel.Phone) {
	t.Helper()

	email, err := kernel.NewEmail("jane.doe@example.com")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("5511987654321")
	require.NoError(t, err)
	return email, phone
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		email, phone := validContact(t)

		c, err := customer.NewCustomer("Jane Doe", email, phone, "1 Main Street")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.NoError(t, c.ID().Validate())
		assert.Equal(t, "Jane Doe", c.Name())
		assert.True(t, c.Email().IsEqual(email))
		assert.True(t, c.Phone().IsEqual(phone))
		assert.Equal(t, "1 Main Street", c.Address())
		assert.False(t, c.CreatedAt().IsZero())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		email, phone := validContact(t)

		_, err := customer.NewCustomer("", email, phone, "1 Main Street")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		email, phone := validContact(t)

		_, err := customer.NewCustomer("Jane Doe", email, phone, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail with zero value email", func(t *testing.T) {
		_, phone := validContact(t)
		var email kernel.Email

		_, err := customer.NewCustomer("Jane Doe", email, phone, "1 Main Street")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "NewEmail")
	})

	t.Run("should fail with zero value phone", func(t *testing.T) {
		email, _ := validContact(t)
		var phone kernel.Phone

		_, err := customer.NewCustomer("Jane Doe", email, phone, "1 Main Street")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "NewPhone")
	})
}

func TestCustomer_UpdateProfile(t *testing.T) {
	t.Run("should apply only provided fields", func(t *testing.T) {
		email, phone := validContact(t)
		c, err := customer.NewCustomer("Jane Doe", email, phone, "1 Main Street")
		require.NoError(t, err)

		newName := "Jane Smith"
		err = c.UpdateProfile(&newName, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", c.Name())
		assert.True(t, c.Email().IsEqual(email), "email must be unchanged")
		assert.Equal(t, "1 Main Street", c.Address())
	})

	t.Run("should update contact value objects", func(t *testing.T) {
		email, phone := validContact(t)
		c, err := customer.NewCustomer("Jane Doe", email, phone, "1 Main Street")
		require.NoError(t, err)

		newEmail, err := kernel.NewEmail("new@example.com")
		require.NoError(t, err)
		newPhone, err := kernel.NewPhone("5511912345678")
		require.NoError(t, err)

		require.NoError(t, c.UpdateProfile(nil, &newEmail, &newPhone, nil))

		assert.Equal(t, "new@example.com", c.Email().String())
		assert.Equal(t, "5511912345678", c.Phone().String())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		email, phone := validContact(t)
		c, err := customer.NewCustomer("Jane Doe", email, phone, "1 Main Street")
		require.NoError(t, err)

		empty := ""
		err = c.UpdateProfile(&empty, nil, nil, nil)

		require.Error(t, err)
		assert.Equal(t, "Jane Doe", c.Name())
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail for zero value customer", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}
