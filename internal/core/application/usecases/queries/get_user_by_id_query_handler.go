package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
)

// GetUserByIDQueryHandler retrieves a single user from the database.
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler for single user retrieval.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

// Handle executes the query and returns the user read model.
func (h GetUserByIDQueryHandler) Handle(ctx context.Context, query GetUserByIDQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	response, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return UserResponse{}, err
	}

	return response, nil
}

// scanUserRow maps one users row into the read model.
func scanUserRow(row rowScanner) (UserResponse, error) {
	var (
		id       uuid.UUID
		role     int
		response UserResponse
	)

	if err := row.Scan(&id, &response.Name, &response.Email, &role, &response.CreatedAt); err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	response.ID = userID
	response.Role = user.Role(role).String()

	return response, nil
}
