package ports

import (
	"github.com/yuzvak/farmshop-service/internal/domain/customer"
)

type CustomerDirectory interface {
	AddCustomer(c *customer.Customer) error
	GetCustomer(name string, phoneNumber int) (*customer.Customer, error)
	ContainsCustomer(c *customer.Customer) bool
	AllRecords() []*customer.Customer
}
