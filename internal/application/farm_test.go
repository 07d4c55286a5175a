package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzvak/farmshop-service/internal/domain/customer"
	domainErrors "github.com/yuzvak/farmshop-service/internal/domain/errors"
	"github.com/yuzvak/farmshop-service/internal/domain/product"
	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/directory"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/display"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/inventory"
	"github.com/yuzvak/farmshop-service/internal/pkg/clock"
	"github.com/yuzvak/farmshop-service/internal/pkg/generator"
)

func newFancyFarm() *Farm {
	clk := clock.NewMockClock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	manager := transaction.NewManager(clk, generator.NewCodeGenerator())
	return NewFarm(inventory.NewFancy(), directory.NewAddressBook(), display.NewReceiptPrinter("Farm Shop"), manager)
}

func newBasicFarm() *Farm {
	clk := clock.NewMockClock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	manager := transaction.NewManager(clk, generator.NewCodeGenerator())
	return NewFarm(inventory.NewBasic(), directory.NewAddressBook(), display.NewReceiptPrinter("Farm Shop"), manager)
}

func TestSaveCustomer(t *testing.T) {
	farm := newFancyFarm()
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")

	require.NoError(t, farm.SaveCustomer(alice))

	found, err := farm.GetCustomer("Alice", 123456)
	require.NoError(t, err)
	assert.Same(t, alice, found)
}

func TestSaveCustomerRejectsDuplicates(t *testing.T) {
	farm := newFancyFarm()
	require.NoError(t, farm.SaveCustomer(customer.NewCustomer("Alice", 123456, "14 Pine Lane")))

	err := farm.SaveCustomer(customer.NewCustomer("Alice", 123456, "2 Elm Street"))

	assert.ErrorIs(t, err, domainErrors.ErrDuplicateCustomer)
	assert.Len(t, farm.AllCustomers(), 1)
}

func TestGetCustomerNotFound(t *testing.T) {
	farm := newFancyFarm()

	_, err := farm.GetCustomer("Nobody", 0)

	assert.ErrorIs(t, err, domainErrors.ErrCustomerNotFound)
}

func TestStockProduct(t *testing.T) {
	farm := newFancyFarm()

	farm.StockProduct(product.Egg, product.Regular)
	farm.StockProduct(product.Milk, product.Gold)

	assert.Equal(t, []product.Product{
		product.NewProduct(product.Egg, product.Regular),
		product.NewProduct(product.Milk, product.Gold),
	}, farm.AllStock())
}

func TestStockProductsRejectsQuantityBelowOne(t *testing.T) {
	farm := newFancyFarm()

	err := farm.StockProducts(product.Egg, product.Regular, 0)

	assert.ErrorIs(t, err, domainErrors.ErrInvalidStockRequest)
	assert.Empty(t, farm.AllStock())
}

func TestStockProductsOnBasicInventory(t *testing.T) {
	farm := newBasicFarm()

	require.NoError(t, farm.StockProducts(product.Egg, product.Regular, 1))
	err := farm.StockProducts(product.Egg, product.Regular, 3)

	assert.ErrorIs(t, err, domainErrors.ErrInvalidStockRequest)
	assert.Len(t, farm.AllStock(), 1)
}

func TestStockProductsOnFancyInventory(t *testing.T) {
	farm := newFancyFarm()

	require.NoError(t, farm.StockProducts(product.Wool, product.Silver, 3))

	assert.Len(t, farm.AllStock(), 3)
}

func TestStartTransactionRejectsSecondCustomer(t *testing.T) {
	farm := newFancyFarm()
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	bob := customer.NewCustomer("Bob", 654321, "2 Elm Street")

	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))
	err := farm.StartTransaction(transaction.NewTransaction(bob))

	assert.ErrorIs(t, err, domainErrors.ErrFailedTransaction)
}

func TestAddToCartWithoutTransaction(t *testing.T) {
	farm := newFancyFarm()
	farm.StockProduct(product.Egg, product.Regular)

	_, err := farm.AddToCart(product.Egg)

	assert.ErrorIs(t, err, domainErrors.ErrFailedTransaction)
	assert.Len(t, farm.AllStock(), 1)
}

func TestAddToCartMovesOneUnit(t *testing.T) {
	farm := newFancyFarm()
	farm.StockProduct(product.Egg, product.Regular)
	farm.StockProduct(product.Egg, product.Gold)
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))

	added, err := farm.AddToCart(product.Egg)

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []product.Product{product.NewProduct(product.Egg, product.Gold)}, alice.Cart().Contents())
	assert.Equal(t, []product.Product{product.NewProduct(product.Egg, product.Regular)}, farm.AllStock())
}

func TestAddToCartOutOfStock(t *testing.T) {
	farm := newFancyFarm()
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))

	added, err := farm.AddToCart(product.Milk)

	require.NoError(t, err)
	assert.Zero(t, added)
	assert.True(t, alice.Cart().IsEmpty())
}

func TestAddQuantityToCart(t *testing.T) {
	farm := newFancyFarm()
	require.NoError(t, farm.StockProducts(product.Milk, product.Regular, 2))
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))

	added, err := farm.AddQuantityToCart(product.Milk, 5)

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Empty(t, farm.AllStock())
	assert.Len(t, alice.Cart().Contents(), 2)
}

func TestAddQuantityToCartRejectsQuantityBelowOne(t *testing.T) {
	farm := newFancyFarm()
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))

	_, err := farm.AddQuantityToCart(product.Milk, 0)

	assert.ErrorIs(t, err, domainErrors.ErrInvalidStockRequest)
}

func TestAddQuantityToCartOnBasicInventory(t *testing.T) {
	farm := newBasicFarm()
	farm.StockProduct(product.Egg, product.Regular)
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))

	_, err := farm.AddQuantityToCart(product.Egg, 1)

	assert.ErrorIs(t, err, domainErrors.ErrFailedTransaction)
	assert.Len(t, farm.AllStock(), 1)
}

func TestCheckoutRecordsTransaction(t *testing.T) {
	farm := newFancyFarm()
	require.NoError(t, farm.StockProducts(product.Egg, product.Regular, 2))
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))
	_, err := farm.AddQuantityToCart(product.Egg, 2)
	require.NoError(t, err)

	recorded, err := farm.Checkout()

	require.NoError(t, err)
	assert.True(t, recorded)
	assert.Equal(t, 1, farm.History().TotalTransactionsMade())
	assert.Equal(t, 100, farm.History().GrossEarnings())
	assert.True(t, alice.Cart().IsEmpty())
}

func TestCheckoutDiscardsEmptyTransaction(t *testing.T) {
	farm := newFancyFarm()
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))

	recorded, err := farm.Checkout()

	require.NoError(t, err)
	assert.False(t, recorded)
	assert.Zero(t, farm.History().TotalTransactionsMade())
}

func TestCheckoutWithoutTransaction(t *testing.T) {
	farm := newFancyFarm()

	_, err := farm.Checkout()

	assert.ErrorIs(t, err, domainErrors.ErrFailedTransaction)
}

func TestCheckoutAllowsNextCustomer(t *testing.T) {
	farm := newFancyFarm()
	require.NoError(t, farm.StockProducts(product.Egg, product.Regular, 2))
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	bob := customer.NewCustomer("Bob", 654321, "2 Elm Street")

	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))
	_, err := farm.AddToCart(product.Egg)
	require.NoError(t, err)
	_, err = farm.Checkout()
	require.NoError(t, err)

	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(bob)))
	_, err = farm.AddToCart(product.Egg)
	require.NoError(t, err)
	recorded, err := farm.Checkout()

	require.NoError(t, err)
	assert.True(t, recorded)
	assert.Equal(t, 2, farm.History().TotalTransactionsMade())
}

func TestLastReceiptBeforeAnyTransaction(t *testing.T) {
	farm := newFancyFarm()

	rendered := farm.LastReceipt()

	assert.Contains(t, rendered, "Transaction still in progress")
}

func TestLastReceiptAfterCheckout(t *testing.T) {
	farm := newFancyFarm()
	farm.StockProduct(product.Jam, product.Regular)
	alice := customer.NewCustomer("Alice", 123456, "14 Pine Lane")
	require.NoError(t, farm.StartTransaction(transaction.NewTransaction(alice)))
	_, err := farm.AddToCart(product.Jam)
	require.NoError(t, err)
	_, err = farm.Checkout()
	require.NoError(t, err)

	rendered := farm.LastReceipt()

	assert.Contains(t, rendered, "jam")
	assert.Contains(t, rendered, "Total: $6.70")
	assert.Contains(t, rendered, "Thank you for shopping with us, Alice!")
}
