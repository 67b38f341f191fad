package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
)

func TestRole_String(t *testing.T) {
	testCases := []struct {
		role     user.Role
		expected string
	}{
		{user.RoleUnknown, "Unknown"},
		{user.RoleAdmin, "Admin"},
		{user.RoleOperator, "Operator"},
		{user.Role(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.role.String())
		})
	}
}

func TestRole_Validate(t *testing.T) {
	t.Run("should accept known roles", func(t *testing.T) {
		assert.NoError(t, user.RoleAdmin.Validate())
		assert.NoError(t, user.RoleOperator.Validate())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		assert.ErrorIs(t, user.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, user.Role(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse roles case-insensitively", func(t *testing.T) {
		testCases := []struct {
			raw      string
			expected user.Role
		}{
			{"Admin", user.RoleAdmin},
			{"admin", user.RoleAdmin},
			{"ADMIN", user.RoleAdmin},
			{"Operator", user.RoleOperator},
			{"operator", user.RoleOperator},
		}

		for _, tc := range testCases {
			role, err := user.RoleFromString(tc.raw)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		}
	})

	t.Run("should fail on unknown role names", func(t *testing.T) {
		for _, raw := range []string{"", "Unknown", "Superuser", "admin "} {
			_, err := user.RoleFromString(raw)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}
