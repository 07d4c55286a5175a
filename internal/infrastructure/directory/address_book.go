package directory

import (
	"fmt"

	"github.com/yuzvak/farmshop-service/internal/domain/customer"
	domainErrors "github.com/yuzvak/farmshop-service/internal/domain/errors"
)

// AddressBook is the in-memory record of every customer who visits the farm.
// Two customers are the same record when their name and phone number match;
// the address is not considered.
type AddressBook struct {
	customers []*customer.Customer
}

func NewAddressBook() *AddressBook {
	return &AddressBook{
		customers: make([]*customer.Customer, 0),
	}
}

func (b *AddressBook) AddCustomer(c *customer.Customer) error {
	if b.ContainsCustomer(c) {
		return fmt.Errorf("%w: %s", domainErrors.ErrDuplicateCustomer, c)
	}
	b.customers = append(b.customers, c)
	return nil
}

func (b *AddressBook) GetCustomer(name string, phoneNumber int) (*customer.Customer, error) {
	for _, c := range b.customers {
		if c.Name == name && c.PhoneNumber == phoneNumber {
			return c, nil
		}
	}
	return nil, domainErrors.ErrCustomerNotFound
}

func (b *AddressBook) ContainsCustomer(c *customer.Customer) bool {
	for _, existing := range b.customers {
		if existing.Name == c.Name && existing.PhoneNumber == c.PhoneNumber {
			return true
		}
	}
	return false
}

// AllRecords returns a copy of the customer list in registration order.
func (b *AddressBook) AllRecords() []*customer.Customer {
	records := make([]*customer.Customer, len(b.customers))
	copy(records, b.customers)
	return records
}
