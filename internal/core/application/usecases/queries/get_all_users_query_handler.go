package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllUsersQueryHandler retrieves all user accounts from the database.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for user list retrieval.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query and returns user read models sorted by name.
func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at
		FROM users
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		response, scanErr := scanUserRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
