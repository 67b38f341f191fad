package user

import (
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
)

// Role represents the authorization level of a user account.
// Roles gate access to mutating API operations.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin grants access to all operations, including mutations.
	RoleAdmin

	// RoleOperator grants read access and day-to-day operational views.
	RoleOperator
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleAdmin:    "Admin",
		RoleOperator: "Operator",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:    "Admin",
		RoleOperator: "Operator",
	}
}

// RoleFromString parses a role display string case-insensitively.
// Returns a ValueIsInvalidError for unknown role names.
func RoleFromString(raw string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if strings.EqualFold(name, raw) {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("invalid user role: %q", raw))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
