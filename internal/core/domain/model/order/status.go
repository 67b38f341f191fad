package order

import (
	"errors"
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Shipped
//	   │          │
//	   └──────────┴──> Cancelled
//
// Shipped and Cancelled are terminal states with no outgoing transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Items can only be added, updated or removed while Pending.
	Pending

	// Paid indicates the order has been paid for.
	// Paid orders can be shipped or cancelled, but no longer modified.
	Paid

	// Shipped indicates the order has left the warehouse.
	// This is a terminal state on the success path.
	Shipped

	// Cancelled indicates the order was cancelled before shipping.
	// This is a terminal state on the failure path.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status display string into a Status value.
// Matching is case-insensitive, so "paid", "PAID" and "Paid" all parse to Paid.
// Returns a ValueIsInvalidError when the string names no valid status.
func StatusFromString(raw string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, raw) {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("invalid order status: %q", raw))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Shipped, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Invalid transitions:
//   - Cancelled -> Paid (cannot pay a cancelled order)
//   - Shipped -> Paid (cannot pay a shipped order)
//   - Paid -> Paid (order is already paid)
//
// Returns (Paid, nil) on a valid transition or (0, error) otherwise.
func (s Status) Pay() (Status, error) {
	switch s {
	case Pending:
		return Paid, nil
	case Paid:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("order is already paid"))
	case Shipped:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cannot pay a shipped order"))
	case Cancelled:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cannot pay a cancelled order"))
	default:
		return 0, s.Validate()
	}
}

// Ship transitions the status to Shipped.
//
// The only valid transition is Paid -> Shipped; every other status fails.
//
// Returns (Shipped, nil) on a valid transition or (0, error) otherwise.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("only paid orders can be shipped"))
	}

	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Paid -> Cancelled
//
// Invalid transitions:
//   - Shipped -> Cancelled (cannot cancel a shipped order)
//   - Cancelled -> Cancelled (order is already cancelled)
//
// Returns (Cancelled, nil) on a valid transition or (0, error) otherwise.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Paid:
		return Cancelled, nil
	case Shipped:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cannot cancel a shipped order"))
	case Cancelled:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("order is already cancelled"))
	default:
		return 0, s.Validate()
	}
}
