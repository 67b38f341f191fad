package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
)

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderJSON, len(orders))
	for i, item := range orders {
		response[i] = orderFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(response))
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	customerID, err := parseBodyUUID(request.CustomerID)
	if err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "customerId must be a valid UUID")
	}

	items := make([]commands.OrderItemSpec, len(request.Items))
	for i, item := range request.Items {
		productID, parseErr := parseBodyUUID(item.ProductID)
		if parseErr != nil {
			return writeErrorResponse(ctx, http.StatusBadRequest, "productId must be a valid UUID")
		}

		items[i] = commands.OrderItemSpec{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromCommandResponse(response))
}

// UpdateOrder handles PUT /api/v1/orders/:id - updates status and items
// of an existing order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	customerID, err := parseBodyUUID(request.CustomerID)
	if err != nil {
		return writeErrorResponse(ctx, http.StatusBadRequest, "customerId must be a valid UUID")
	}

	items := make([]commands.OrderItemPatch, len(request.Items))
	for i, item := range request.Items {
		productID, parseErr := parseBodyUUID(item.ProductID)
		if parseErr != nil {
			return writeErrorResponse(ctx, http.StatusBadRequest, "productId must be a valid UUID")
		}

		items[i] = commands.OrderItemPatch{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, customerID, request.Status, items)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromCommandResponse(response))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - deletes an order and
// its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseBodyUUID parses an identifier carried in a request body. An
// empty string maps to the zero UUID so that required-field validation
// in the command reports the missing value instead of a parse failure.
func parseBodyUUID(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, nil
	}
	return kernel.UUIDFromString(raw)
}
