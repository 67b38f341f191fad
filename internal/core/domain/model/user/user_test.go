package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
)

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	t.Run("should create user with valid fields", func(t *testing.T) {
		email := mustEmail(t, "admin@example.com")

		u, err := user.NewUser("Alice", email, "$2a$10$hash", user.RoleAdmin)

		require.NoError(t, err)
		assert.NoError(t, u.ID().Validate())
		assert.Equal(t, "Alice", u.Name())
		assert.True(t, u.Email().IsEqual(email))
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("should fail when name is empty", func(t *testing.T) {
		_, err := user.NewUser("", mustEmail(t, "a@example.com"), "hash", user.RoleOperator)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when email is not constructed", func(t *testing.T) {
		_, err := user.NewUser("Alice", kernel.Email{}, "hash", user.RoleOperator)

		assert.ErrorIs(t, err, kernel.ErrEmailIsNotConstructed)
	})

	t.Run("should fail when password hash is empty", func(t *testing.T) {
		_, err := user.NewUser("Alice", mustEmail(t, "a@example.com"), "", user.RoleOperator)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when role is unknown", func(t *testing.T) {
		_, err := user.NewUser("Alice", mustEmail(t, "a@example.com"), "hash", user.RoleUnknown)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore user from persistence", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)

		u, err := user.RestoreUser(id, "Bob", mustEmail(t, "bob@example.com"), "hash", user.RoleOperator, createdAt)

		require.NoError(t, err)
		assert.Equal(t, id, u.ID())
		assert.Equal(t, createdAt, u.CreatedAt())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.UUID{}, "Bob", mustEmail(t, "bob@example.com"), "hash", user.RoleOperator, time.Now().UTC())

		assert.Error(t, err)
	})
}

func TestUser_Mutators(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser("Alice", mustEmail(t, "alice@example.com"), "hash", user.RoleOperator)
		require.NoError(t, err)
		return u
	}

	t.Run("should update name", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.UpdateName("Alicia"))
		assert.Equal(t, "Alicia", u.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		u := newUser(t)

		assert.ErrorIs(t, u.UpdateName(""), errs.ErrValueIsRequired)
		assert.Equal(t, "Alice", u.Name())
	})

	t.Run("should update email", func(t *testing.T) {
		u := newUser(t)
		next := mustEmail(t, "new@example.com")

		require.NoError(t, u.UpdateEmail(next))
		assert.True(t, u.Email().IsEqual(next))
	})

	t.Run("should update role", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.UpdateRole(user.RoleAdmin))
		assert.Equal(t, user.RoleAdmin, u.Role())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		u := newUser(t)

		assert.ErrorIs(t, u.UpdateRole(user.RoleUnknown), errs.ErrValueIsInvalid)
		assert.Equal(t, user.RoleOperator, u.Role())
	})

	t.Run("should change password hash", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.ChangePassword("newhash"))
		assert.Equal(t, "newhash", u.PasswordHash())
	})

	t.Run("should reject empty password hash", func(t *testing.T) {
		u := newUser(t)

		assert.ErrorIs(t, u.ChangePassword(""), errs.ErrValueIsRequired)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should fail for zero value user", func(t *testing.T) {
		var u user.User

		assert.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}
