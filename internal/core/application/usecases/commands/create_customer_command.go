package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	email   kernel.Email
	phone   kernel.Phone
	address string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Email and phone must already be constructed value objects; name and
// address must be non-empty.
func NewCreateCustomerCommand(
	name string,
	email kernel.Email,
	phone kernel.Phone,
	address string,
) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setName(name),
		customerCommand.setEmail(email),
		customerCommand.setPhone(phone),
		customerCommand.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's e-mail address.
func (c CreateCustomerCommand) Email() kernel.Email {
	return c.email
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() kernel.Phone {
	return c.phone
}

// Address returns the customer's postal address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
