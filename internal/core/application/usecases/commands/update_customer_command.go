package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a partial update of a customer profile.
// Nil fields keep the customer's current values.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       *string
	email      *kernel.Email
	phone      *kernel.Phone
	address    *string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer profile.
// Provided email and phone values must be constructed value objects.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name *string,
	email *kernel.Email,
	phone *kernel.Phone,
	address *string,
) (UpdateCustomerCommand, error) {
	customerCommand := UpdateCustomerCommand{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setEmail(email),
		customerCommand.setPhone(phone),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being updated.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new name, nil when unchanged.
func (c UpdateCustomerCommand) Name() *string {
	return c.name
}

// Email returns the new e-mail address, nil when unchanged.
func (c UpdateCustomerCommand) Email() *kernel.Email {
	return c.email
}

// Phone returns the new phone number, nil when unchanged.
func (c UpdateCustomerCommand) Phone() *kernel.Phone {
	return c.phone
}

// Address returns the new postal address, nil when unchanged.
func (c UpdateCustomerCommand) Address() *string {
	return c.address
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email *kernel.Email) error {
	if email != nil {
		if err := email.Validate(); err != nil {
			return err
		}
	}

	c.email = email
	return nil
}

func (c *UpdateCustomerCommand) setPhone(phone *kernel.Phone) error {
	if phone != nil {
		if err := phone.Validate(); err != nil {
			return err
		}
	}

	c.phone = phone
	return nil
}
