package kernel

import (
	"net/mail"
	"strings"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
// Emails must be created via the NewEmail constructor.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// Email is an immutable value object holding a validated e-mail address.
// The address is normalized to lower case at construction; two Emails are
// equal when their normalized values are equal.
//
// The zero value of Email is invalid and fails Validate. Use NewEmail to
// obtain a valid instance.
//
// Example:
//
//	email, err := kernel.NewEmail("John.Doe@Example.COM")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(email.String()) // "john.doe@example.com"
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email from a raw string.
//
// Validation rules:
//   - the input must not be empty or whitespace-only
//   - the input must parse as an RFC 5322 address
//
// The resulting value is the parsed address, trimmed and lower-cased.
// Returns a ValueIsRequiredError for empty input and a ValueIsInvalidError
// for malformed addresses.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	address, err := mail.ParseAddress(trimmed)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{
		value: strings.ToLower(address.Address),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two Emails by their normalized values.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate ensures the Email was created through NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
