// Package productrepo provides persistence for product entities.
package productrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Sku           string          `gorm:"uniqueIndex"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product entity to its database representation.
func fromDomain(entity *product.Product) ProductDTO {
	return ProductDTO{
		ID:            entity.ID().Bytes(),
		Name:          entity.Name(),
		Sku:           entity.Sku(),
		Price:         entity.Price(),
		StockQuantity: entity.StockQuantity(),
		IsActive:      entity.IsActive(),
		CreatedAt:     entity.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Sku, dto.Price, dto.StockQuantity, dto.IsActive, dto.CreatedAt)
}
