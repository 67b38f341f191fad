package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
)

// Handlers bundles every use case the HTTP server exposes.
type Handlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler

	CreateUser commands.CreateUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	DeleteUser commands.DeleteUserCommandHandler

	Login commands.LoginCommandHandler

	GetOrderByID    queries.GetOrderByIDQueryHandler
	GetAllOrders    queries.GetAllOrdersQueryHandler
	GetCustomerByID queries.GetCustomerByIDQueryHandler
	GetAllCustomers queries.GetAllCustomersQueryHandler
	GetProductByID  queries.GetProductByIDQueryHandler
	GetAllProducts  queries.GetAllProductsQueryHandler
	GetUserByID     queries.GetUserByIDQueryHandler
	GetAllUsers     queries.GetAllUsersQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes on the echo instance.
// Reads on orders, customers and products are open; every mutation and
// all user management requires a bearer token with the admin role.
func (s *Server) RegisterRoutes(e *echo.Echo, tokens TokenVerifier) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.LoginUser)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)

	admin := api.Group("", BearerAuth(tokens), RequireAdmin)

	admin.POST("/orders", s.CreateOrder)
	admin.PUT("/orders/:id", s.UpdateOrder)
	admin.DELETE("/orders/:id", s.DeleteOrder)

	admin.POST("/customers", s.CreateCustomer)
	admin.PUT("/customers/:id", s.UpdateCustomer)
	admin.DELETE("/customers/:id", s.DeleteCustomer)

	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)

	admin.GET("/users", s.GetUsers)
	admin.GET("/users/:id", s.GetUser)
	admin.POST("/users", s.CreateUser)
	admin.PUT("/users/:id", s.UpdateUser)
	admin.DELETE("/users/:id", s.DeleteUser)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
