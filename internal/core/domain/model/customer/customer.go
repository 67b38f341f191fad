// Package customer provides the Customer entity referenced by orders.
// Customers own validated contact details (Email, Phone) and a postal
// address; orders reference customers by ID only.
package customer

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a buyer that orders are placed for.
//
// Invariants:
//   - name and address are non-empty
//   - email and phone are valid value objects
//
// Fields change only through the Update methods; partial updates merge
// at the application layer and call through here.
type Customer struct {
	id            kernel.UUID
	name          string
	email         kernel.Email
	phone         kernel.Phone
	address       string
	createdAt     time.Time
	isConstructed bool
}

// NewCustomer creates a Customer with a generated identifier.
// All fields are required; email and phone must be constructed value objects.
func NewCustomer(name string, email kernel.Email, phone kernel.Phone, address string) (*Customer, error) {
	c := &Customer{
		id:            kernel.NewUUID(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name string, email kernel.Email, phone kernel.Phone, address string, createdAt time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Customer{
		id:            id,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's e-mail address.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

// Address returns the customer's postal address.
func (c *Customer) Address() string {
	return c.address
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdateProfile applies the provided fields, leaving nil fields unchanged.
// Each provided field goes through its dedicated mutator so validation
// cannot be bypassed by the merge.
func (c *Customer) UpdateProfile(name *string, email *kernel.Email, phone *kernel.Phone, address *string) error {
	if name != nil {
		if err := c.setName(*name); err != nil {
			return err
		}
	}
	if email != nil {
		if err := c.setEmail(*email); err != nil {
			return err
		}
	}
	if phone != nil {
		if err := c.setPhone(*phone); err != nil {
			return err
		}
	}
	if address != nil {
		if err := c.setAddress(*address); err != nil {
			return err
		}
	}
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
