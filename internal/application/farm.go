package application

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/yuzvak/farmshop-service/internal/application/ports"
	"github.com/yuzvak/farmshop-service/internal/domain/customer"
	domainErrors "github.com/yuzvak/farmshop-service/internal/domain/errors"
	"github.com/yuzvak/farmshop-service/internal/domain/product"
	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/monitoring"
	"github.com/yuzvak/farmshop-service/internal/pkg/money"
)

var log = logging.MustGetLogger("log")

// Farm coordinates the shop: stocking, customer records, the single
// ongoing transaction and the history of closed ones.
type Farm struct {
	inventory ports.Inventory
	directory ports.CustomerDirectory
	renderer  ports.ReceiptRenderer
	manager   *transaction.Manager
	history   *transaction.History
}

func NewFarm(
	inventory ports.Inventory,
	directory ports.CustomerDirectory,
	renderer ports.ReceiptRenderer,
	manager *transaction.Manager,
) *Farm {
	return &Farm{
		inventory: inventory,
		directory: directory,
		renderer:  renderer,
		manager:   manager,
		history:   transaction.NewHistory(),
	}
}

func (f *Farm) Manager() *transaction.Manager {
	return f.manager
}

func (f *Farm) History() *transaction.History {
	return f.history
}

func (f *Farm) SaveCustomer(c *customer.Customer) error {
	if err := f.directory.AddCustomer(c); err != nil {
		return err
	}
	monitoring.RecordCustomerRegistered()
	log.Infof("Registered customer %s", c.Name)
	return nil
}

func (f *Farm) GetCustomer(name string, phoneNumber int) (*customer.Customer, error) {
	return f.directory.GetCustomer(name, phoneNumber)
}

func (f *Farm) AllCustomers() []*customer.Customer {
	return f.directory.AllRecords()
}

func (f *Farm) StockProduct(barcode product.Barcode, quality product.Quality) {
	f.inventory.AddProduct(barcode, quality)
	monitoring.RecordProductsStocked(barcode.DisplayName(), 1)
}

func (f *Farm) StockProducts(barcode product.Barcode, quality product.Quality, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrInvalidStockRequest)
	}
	if err := f.inventory.AddProducts(barcode, quality, quantity); err != nil {
		return err
	}
	monitoring.RecordProductsStocked(barcode.DisplayName(), quantity)
	return nil
}

func (f *Farm) AllStock() []product.Product {
	return f.inventory.AllProducts()
}

func (f *Farm) StartTransaction(t *transaction.Transaction) error {
	if err := f.manager.SetOngoingTransaction(t); err != nil {
		return fmt.Errorf("%w: another customer is already shopping", err)
	}
	log.Infof("Transaction %s opened for %s", t.Code(), t.AssociatedCustomer().Name)
	return nil
}

// AddToCart moves one unit of the given product type from the inventory to
// the ongoing transaction's cart and reports how many units were moved,
// which is zero when the type is out of stock.
func (f *Farm) AddToCart(barcode product.Barcode) (int, error) {
	if !f.manager.HasOngoingTransaction() {
		return 0, fmt.Errorf("%w: cannot add to cart when no customer has started shopping",
			domainErrors.ErrFailedTransaction)
	}

	removed := f.inventory.RemoveProduct(barcode)
	for _, p := range removed {
		if err := f.manager.RegisterPendingPurchase(p); err != nil {
			return 0, err
		}
	}

	if len(removed) > 0 {
		monitoring.RecordProductsRemoved(barcode.DisplayName(), len(removed))
	}
	return len(removed), nil
}

// AddQuantityToCart moves up to quantity units of the given product type
// from the inventory to the ongoing transaction's cart, when the inventory
// supports bulk removal.
func (f *Farm) AddQuantityToCart(barcode product.Barcode, quantity int) (int, error) {
	if !f.manager.HasOngoingTransaction() {
		return 0, fmt.Errorf("%w: cannot add to cart when no customer has started shopping",
			domainErrors.ErrFailedTransaction)
	}
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrInvalidStockRequest)
	}

	removed, err := f.inventory.RemoveProducts(barcode, quantity)
	if err != nil {
		return 0, err
	}
	for _, p := range removed {
		if err := f.manager.RegisterPendingPurchase(p); err != nil {
			return 0, err
		}
	}

	if len(removed) > 0 {
		monitoring.RecordProductsRemoved(barcode.DisplayName(), len(removed))
	}
	return len(removed), nil
}

// Checkout closes the ongoing transaction. Transactions with an empty cart
// are discarded rather than recorded; the report value tells the caller
// whether the transaction made it into the history.
func (f *Farm) Checkout() (bool, error) {
	t, err := f.manager.CloseCurrentTransaction()
	if err != nil {
		return false, err
	}

	if len(t.Purchases()) == 0 {
		monitoring.RecordEmptyTransactionClosed()
		log.Infof("Transaction %s closed with an empty cart", t.Code())
		return false, nil
	}

	f.history.RecordTransaction(t)
	monitoring.RecordTransactionClosed(t.Total())
	for barcode, purchased := range t.PurchasesByType() {
		monitoring.RecordProductsSold(barcode.DisplayName(), len(purchased))
	}
	log.Infof("Transaction %s closed, total %s", t.Code(), money.FormatCents(t.Total()))
	return true, nil
}

// LastReceipt renders the receipt of the most recently recorded
// transaction, or a pending notice when nothing has been recorded yet.
func (f *Farm) LastReceipt() string {
	t := f.history.LastTransaction()
	if t == nil {
		return f.renderer.Render(&transaction.Receipt{Pending: true})
	}
	return f.renderer.Render(t.Receipt())
}
