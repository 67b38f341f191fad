package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
// Phones must be created via the NewPhone constructor.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone constructor")

var thirteenDigitsPattern = regexp.MustCompile(`^\d{13}$`)

// Phone is an immutable value object holding a phone number consisting of
// exactly 13 decimal digits (country code, area code and subscriber number
// with no separators).
//
// The zero value of Phone is invalid and fails Validate. Use NewPhone to
// obtain a valid instance.
//
// Example:
//
//	phone, err := kernel.NewPhone("5511987654321")
//	if err != nil {
//	    // handle validation error
//	}
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhone creates a Phone from a raw string.
//
// Validation rules:
//   - the input must not be empty or whitespace-only
//   - the input must consist of exactly 13 decimal digits
//
// Returns a ValueIsRequiredError for empty input and a ValueIsInvalidError
// when the pattern does not match.
func NewPhone(raw string) (Phone, error) {
	if strings.TrimSpace(raw) == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	if !thirteenDigitsPattern.MatchString(raw) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a 13-digit number", raw))
	}

	return Phone{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the digits of the phone number.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares two Phones by value.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate ensures the Phone was created through NewPhone.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}
