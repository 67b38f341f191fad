package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
)

// GetProducts handles GET /api/v1/products - retrieves all products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.handlers.GetAllProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductJSON, len(products))
	for i, item := range products {
		response[i] = productFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id - retrieves a single product.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	query, err := queries.NewGetProductByIDQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetProductByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromReadModel(response))
}

// CreateProduct handles POST /api/v1/products - creates a new product.
// A product is active unless the request says otherwise.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	cmd, err := commands.NewCreateProductCommand(
		request.Name,
		request.Sku,
		request.Price,
		request.StockQuantity,
		isActive,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id - updates the fields
// present in the request and leaves the rest untouched.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	var request UpdateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return writeInvalidBody(ctx)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		request.Name,
		request.Sku,
		request.Price,
		request.StockQuantity,
		request.IsActive,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id - deletes a product.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeInvalidID(ctx)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
