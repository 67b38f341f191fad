package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetUserByIDQueryIsNotConstructed = errors.New(
	"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
)

// GetUserByIDQuery retrieves a single user account.
type GetUserByIDQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query for one user.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetUserByIDQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the identifier of the requested user.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

// UserResponse represents a user account in the read model.
// The password hash is deliberately excluded.
type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
