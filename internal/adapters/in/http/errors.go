package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/pkg/errs"
)

// writeError maps application errors onto HTTP status codes.
//
// Validation failures are checked before not-found: a missing customer
// or product referenced by a request body is reported as a validation
// error wrapping the lookup failure, and must stay a 400 even though
// the chain also matches ErrObjectNotFound.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return writeErrorResponse(ctx, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return writeErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		return writeErrorResponse(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func writeErrorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeInvalidBody(ctx echo.Context) error {
	return writeErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
}

func writeInvalidID(ctx echo.Context) error {
	return writeErrorResponse(ctx, http.StatusBadRequest, "id must be a valid UUID")
}
