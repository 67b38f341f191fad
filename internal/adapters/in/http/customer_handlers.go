package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
)

// GetCustomers handles GET /api/v1/customers - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.handlers.GetAllCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomerJSON, len(customers))
	for i, item := range customers {
		response[i] = customerFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id - retrieves a single customer.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	query, err := queries.NewGetCustomerByIDQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetCustomerByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromReadModel(response))
}

// CreateCustomer handles POST /api/v1/customers - creates a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	phone, err := kernel.NewPhone(request.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(request.Name, email, phone, request.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: customerID.String()})
}

// UpdateCustomer handles PUT /api/v1/customers/:id - updates the fields
// present in the request and leaves the rest untouched.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	var request UpdateCustomerRequest
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

	var phone *kernel.Phone
	if request.Phone != nil {
		parsed, parseErr := kernel.NewPhone(*request.Phone)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		phone = &parsed
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, request.Name, email, phone, request.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id - deletes a customer.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
