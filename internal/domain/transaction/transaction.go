package transaction

import (
	"fmt"
	"time"

	"github.com/yuzvak/farmshop-service/internal/domain/customer"
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

type kind int

const (
	kindPlain kind = iota
	kindCategorised
	kindSpecialSale
)

// Transaction keeps track of what products are to be (or have been)
// purchased and by whom. While active it is a live view over the customer's
// cart; once finalised it holds its own frozen snapshot.
type Transaction struct {
	customer  *customer.Customer
	kind      kind
	discounts map[product.Barcode]int

	code        string
	finalised   bool
	purchased   []product.Product
	openedAt    time.Time
	finalisedAt time.Time
}

func NewTransaction(c *customer.Customer) *Transaction {
	return &Transaction{
		customer: c,
		kind:     kindPlain,
	}
}

func NewCategorisedTransaction(c *customer.Customer) *Transaction {
	return &Transaction{
		customer: c,
		kind:     kindCategorised,
	}
}

// NewSpecialSaleTransaction keeps its own copy of the discount map. Values
// are integer percentages per product type; callers are responsible for
// keeping them within 0-100.
func NewSpecialSaleTransaction(c *customer.Customer, discounts map[product.Barcode]int) *Transaction {
	copied := make(map[product.Barcode]int, len(discounts))
	for barcode, percent := range discounts {
		copied[barcode] = percent
	}
	return &Transaction{
		customer:  c,
		kind:      kindSpecialSale,
		discounts: copied,
	}
}

func (t *Transaction) AssociatedCustomer() *customer.Customer {
	return t.customer
}

func (t *Transaction) Code() string {
	return t.code
}

func (t *Transaction) OpenedAt() time.Time {
	return t.openedAt
}

func (t *Transaction) FinalisedAt() time.Time {
	return t.finalisedAt
}

func (t *Transaction) IsFinalised() bool {
	return t.finalised
}

// Purchases returns the products comprising this transaction: the customer's
// current cart contents while active, the frozen snapshot once finalised.
// The returned slice is always a copy.
func (t *Transaction) Purchases() []product.Product {
	if t.finalised {
		snapshot := make([]product.Product, len(t.purchased))
		copy(snapshot, t.purchased)
		return snapshot
	}
	return t.customer.Cart().Contents()
}

func (t *Transaction) Total() int {
	purchases := t.Purchases()
	if t.kind == kindSpecialSale {
		total := 0
		for _, barcode := range purchasedTypes(purchases) {
			total += discountedSubtotal(purchases, barcode, t.DiscountAmount(barcode))
		}
		return total
	}
	total := 0
	for _, p := range purchases {
		total += p.BasePrice()
	}
	return total
}

// Finalise freezes the purchase set: the cart contents become the permanent
// record of this transaction and the cart is emptied for the next visit.
// Calling it again would re-snapshot the now-empty cart, so the manager is
// the only production caller.
func (t *Transaction) Finalise() {
	t.finalised = true
	cart := t.customer.Cart()
	t.purchased = cart.Contents()
	cart.Clear()
}

// PurchasedTypes returns the distinct purchased product types in catalogue
// order.
func (t *Transaction) PurchasedTypes() []product.Barcode {
	return purchasedTypes(t.Purchases())
}

func (t *Transaction) PurchasesByType() map[product.Barcode][]product.Product {
	byType := make(map[product.Barcode][]product.Product)
	for _, p := range t.Purchases() {
		byType[p.Barcode] = append(byType[p.Barcode], p)
	}
	return byType
}

func (t *Transaction) PurchaseQuantity(barcode product.Barcode) int {
	return quantityOf(t.Purchases(), barcode)
}

// PurchaseSubtotal reports the price of all units of the given type within
// this transaction, with the configured discount applied on special sales.
func (t *Transaction) PurchaseSubtotal(barcode product.Barcode) int {
	purchases := t.Purchases()
	if t.kind == kindSpecialSale {
		return discountedSubtotal(purchases, barcode, t.DiscountAmount(barcode))
	}
	return baseSubtotal(purchases, barcode)
}

// DiscountAmount returns the integer discount percentage configured for the
// given type, or 0 when none is.
func (t *Transaction) DiscountAmount(barcode product.Barcode) int {
	return t.discounts[barcode]
}

// TotalSaved reports how much the discounts took off the undiscounted price.
func (t *Transaction) TotalSaved() int {
	total := 0
	for _, p := range t.Purchases() {
		total += p.BasePrice()
	}
	return total - t.Total()
}

func (t *Transaction) String() string {
	status := "Active"
	if t.finalised {
		status = "Finalised"
	}
	base := fmt.Sprintf("Transaction {Customer: %s | Phone Number: %d | Address: %s, Status: %s, Associated Products: %v",
		t.customer.Name, t.customer.PhoneNumber, t.customer.Address, status, t.Purchases())
	if t.kind == kindSpecialSale {
		return fmt.Sprintf("%s, Discounts: %v}", base, t.discounts)
	}
	return base + "}"
}
