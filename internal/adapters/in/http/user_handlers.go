package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
)

// GetUsers handles GET /api/v1/users - retrieves all users.
func (s *Server) GetUsers(ctx echo.Context) error {
	query := queries.NewGetAllUsersQuery()

	users, err := s.handlers.GetAllUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserJSON, len(users))
	for i, item := range users {
		response[i] = userFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:id - retrieves a single user.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	query, err := queries.NewGetUserByIDQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetUserByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromReadModel(response))
}

// CreateUser handles POST /api/v1/users - creates a new user with a
// hashed password.
func (s *Server) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	role, err := user.RoleFromString(request.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(request.Name, email, request.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	userID, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: userID.String()})
}

// UpdateUser handles PUT /api/v1/users/:id - updates the fields present
// in the request; a new password is re-hashed before storage.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	var request UpdateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	var email *kernel.Email
	if request.Email != nil {
		parsed, parseErr := kernel.NewEmail(*request.Email)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		email = &parsed
	}

	var role *user.Role
	if request.Role != nil {
		parsed, parseErr := user.RoleFromString(*request.Role)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		role = &parsed
	}

	cmd, err := commands.NewUpdateUserCommand(userID, request.Name, email, request.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id - deletes a user.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
