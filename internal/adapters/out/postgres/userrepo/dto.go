// Package userrepo provides persistence for user accounts.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(entity *user.User) UserDTO {
	return UserDTO{
		ID:           entity.ID().Bytes(),
		Name:         entity.Name(),
		Email:        entity.Email().String(),
		PasswordHash: entity.PasswordHash(),
		Role:         int(entity.Role()),
		CreatedAt:    entity.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, email, dto.PasswordHash, user.Role(dto.Role), dto.CreatedAt)
}
