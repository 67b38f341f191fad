package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
)

// LoginUser handles POST /api/v1/auth/login - exchanges credentials for
// a bearer token. Every failure path reports the same message so the
// response does not reveal whether the email is registered.
func (s *Server) LoginUser(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return writeErrorResponse(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	cmd, err := commands.NewLoginCommand(email, request.Password)
	if err != nil {
		return writeErrorResponse(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}
