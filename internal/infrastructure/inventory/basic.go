package inventory

import (
	"fmt"

	domainErrors "github.com/yuzvak/farmshop-service/internal/domain/errors"
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

// Basic is a very basic inventory that both stores and handles products
// individually. It only supports operating on single products at a time.
type Basic struct {
	products []product.Product
}

func NewBasic() *Basic {
	return &Basic{
		products: make([]product.Product, 0),
	}
}

func (inv *Basic) AddProduct(barcode product.Barcode, quality product.Quality) {
	inv.products = append(inv.products, product.NewProduct(barcode, quality))
}

// AddProducts accepts a quantity of exactly one; basic inventories never
// support bulk stocking.
func (inv *Basic) AddProducts(barcode product.Barcode, quality product.Quality, quantity int) error {
	if quantity != 1 {
		return fmt.Errorf("%w: current inventory is not fancy enough, please supply products one at a time",
			domainErrors.ErrInvalidStockRequest)
	}
	inv.AddProduct(barcode, quality)
	return nil
}

func (inv *Basic) ExistsProduct(barcode product.Barcode) bool {
	return containsType(inv.products, barcode)
}

// RemoveProduct removes the highest quality product with the given barcode
// from the inventory, or nothing when none is stocked.
func (inv *Basic) RemoveProduct(barcode product.Barcode) []product.Product {
	var removed []product.Product
	inv.products, removed = takeHighestQuality(inv.products, barcode)
	return removed
}

// RemoveProducts always fails; basic inventories never support bulk
// purchases, not even for a quantity of one.
func (inv *Basic) RemoveProducts(barcode product.Barcode, quantity int) ([]product.Product, error) {
	return nil, fmt.Errorf("%w: current inventory is not fancy enough, please purchase products one at a time",
		domainErrors.ErrFailedTransaction)
}

// AllProducts returns the stock in the order it was added.
func (inv *Basic) AllProducts() []product.Product {
	all := make([]product.Product, len(inv.products))
	copy(all, inv.products)
	return all
}
