// Package customerrepo provides persistence for customer entities.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Address   string
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        entity.ID().Bytes(),
		Name:      entity.Name(),
		Email:     entity.Email().String(),
		Phone:     entity.Phone().String(),
		Address:   entity.Address(),
		CreatedAt: entity.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, email, phone, dto.Address, dto.CreatedAt)
}
