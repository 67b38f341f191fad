package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/adapters/out/auth"
	"ordermanagement/internal/core/domain/model/user"
)

// roleContextKey is where the authenticated role is stored on the echo
// context after the bearer token has been verified.
const roleContextKey = "auth.role"

// TokenVerifier checks a raw bearer token and returns its claims.
type TokenVerifier interface {
	Parse(raw string) (*auth.Claims, error)
}

// BearerAuth rejects requests that do not carry a valid bearer token.
// On success the token's role is stored on the request context for
// role checks further down the chain.
func BearerAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			const prefix = "Bearer "

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, prefix) {
				return writeErrorResponse(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, prefix))
			if err != nil {
				return writeErrorResponse(ctx, http.StatusUnauthorized, "invalid token")
			}

			ctx.Set(roleContextKey, claims.Role)
			return next(ctx)
		}
	}
}

// RequireAdmin allows only requests authenticated with the admin role.
// Must run after BearerAuth so the role is present on the context.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		role, _ := ctx.Get(roleContextKey).(string)
		if role != user.RoleAdmin.String() {
			return writeErrorResponse(ctx, http.StatusForbidden, "admin role required")
		}
		return next(ctx)
	}
}
