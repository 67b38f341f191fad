package http

import (
	"time"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// UpdateOrderRequest carries a partial order update. Items listed here
// patch matching order lines; quantity and unitPrice fall back to the
// current values when omitted.
type UpdateOrderRequest struct {
	CustomerID string                  `json:"customerId"`
	Status     string                  `json:"status"`
	Items      []OrderItemPatchRequest `json:"items"`
}

type OrderItemPatchRequest struct {
	ProductID string           `json:"productId"`
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

type OrderJSON struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	PaidAt      *time.Time      `json:"paidAt,omitempty"`
	Items       []OrderItemJSON `json:"items"`
}

type OrderItemJSON struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type CustomerJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"isActive"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Sku           *string          `json:"sku"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stockQuantity"`
	IsActive      *bool            `json:"isActive"`
}

type ProductJSON struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserJSON never carries the password hash.
type UserJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderFromCommandResponse(resp commands.OrderResponse) OrderJSON {
	items := make([]OrderItemJSON, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemJSON{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return OrderJSON{
		ID:          resp.ID.String(),
		CustomerID:  resp.CustomerID.String(),
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
		CreatedAt:   resp.CreatedAt,
		PaidAt:      resp.PaidAt,
		Items:       items,
	}
}

func orderFromReadModel(resp queries.OrderResponse) OrderJSON {
	items := make([]OrderItemJSON, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemJSON{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return OrderJSON{
		ID:          resp.ID.String(),
		CustomerID:  resp.CustomerID.String(),
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
		CreatedAt:   resp.CreatedAt,
		PaidAt:      resp.PaidAt,
		Items:       items,
	}
}

func customerFromReadModel(resp queries.CustomerResponse) CustomerJSON {
	return CustomerJSON{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Address:   resp.Address,
		CreatedAt: resp.CreatedAt,
	}
}

func productFromReadModel(resp queries.ProductResponse) ProductJSON {
	return ProductJSON{
		ID:            resp.ID.String(),
		Name:          resp.Name,
		Sku:           resp.Sku,
		Price:         resp.Price,
		StockQuantity: resp.StockQuantity,
		IsActive:      resp.IsActive,
		CreatedAt:     resp.CreatedAt,
	}
}

func userFromReadModel(resp queries.UserResponse) UserJSON {
	return UserJSON{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      resp.Role,
		CreatedAt: resp.CreatedAt,
	}
}
