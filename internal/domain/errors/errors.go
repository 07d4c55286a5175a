package errors

import (
	"errors"
)

var (
	ErrDuplicateCustomer = errors.New("customer already exists in the address book")
	ErrCustomerNotFound  = errors.New("customer not found in the address book")

	ErrInvalidStockRequest = errors.New("invalid stock request")
	ErrFailedTransaction   = errors.New("failed transaction")
)
