package customer

import (
	"fmt"
)

type Customer struct {
	Name        string
	PhoneNumber int
	Address     string

	cart *Cart
}

func NewCustomer(name string, phoneNumber int, address string) *Customer {
	return &Customer{
		Name:        name,
		PhoneNumber: phoneNumber,
		Address:     address,
		cart:        NewCart(),
	}
}

// Cart returns the customer's shopping cart. The cart instance is fixed for
// the customer's lifetime; callers mutate it in place.
func (c *Customer) Cart() *Cart {
	return c.cart
}

func (c *Customer) String() string {
	return fmt.Sprintf("Name: %s | Phone Number: %d | Address: %s", c.Name, c.PhoneNumber, c.Address)
}
