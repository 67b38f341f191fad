package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/adapters/out/auth"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
)

func issueToken(t *testing.T, tokens *auth.JWTTokenGenerator, role user.Role) string {
	t.Helper()

	email, err := kernel.NewEmail(fmt.Sprintf("%s@example.com", role))
	require.NoError(t, err)

	account, err := user.NewUser("Test User", email, "hashed-password", role)
	require.NoError(t, err)

	token, err := tokens.Generate(account)
	require.NoError(t, err)
	return token
}

func securedEcho(tokens *auth.JWTTokenGenerator) *echo.Echo {
	e := echo.New()
	group := e.Group("", BearerAuth(tokens))
	group.GET("/resource", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	})
	group.POST("/resource", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	}, RequireAdmin)
	return e
}

func TestBearerAuth(t *testing.T) {
	tokens, err := auth.NewJWTTokenGenerator("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("should reject request without authorization header", func(t *testing.T) {
		e := securedEcho(tokens)

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject malformed bearer token", func(t *testing.T) {
		e := securedEcho(tokens)

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject token signed with different secret", func(t *testing.T) {
		otherTokens, err := auth.NewJWTTokenGenerator("other-secret", time.Hour)
		require.NoError(t, err)

		e := securedEcho(tokens)

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, otherTokens, user.RoleOperator))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should allow valid token on read route", func(t *testing.T) {
		e := securedEcho(tokens)

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokens, user.RoleOperator))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens, err := auth.NewJWTTokenGenerator("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("should forbid operator on mutating route", func(t *testing.T) {
		e := securedEcho(tokens)

		req := httptest.NewRequest(http.MethodPost, "/resource", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokens, user.RoleOperator))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should allow admin on mutating route", func(t *testing.T) {
		e := securedEcho(tokens)

		req := httptest.NewRequest(http.MethodPost, "/resource", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokens, user.RoleAdmin))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestWriteError(t *testing.T) {
	serve := func(err error) *httptest.ResponseRecorder {
		e := echo.New()
		e.GET("/fail", func(ctx echo.Context) error {
			return writeError(ctx, err)
		})

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("should map validation errors to 400", func(t *testing.T) {
		rec := serve(errs.NewValueIsInvalidError("status"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should map missing references to 400 even though lookup failed", func(t *testing.T) {
		cause := errs.NewObjectNotFoundError("customer", kernel.NewUUID().String())
		rec := serve(errs.NewValueIsInvalidErrorWithCause("customerId", cause))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should map not found to 404", func(t *testing.T) {
		rec := serve(errs.NewObjectNotFoundError("order", kernel.NewUUID().String()))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should map invalid credentials to 401", func(t *testing.T) {
		rec := serve(commands.ErrInvalidCredentials)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should map unknown errors to 500", func(t *testing.T) {
		rec := serve(errors.New("database gone"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
