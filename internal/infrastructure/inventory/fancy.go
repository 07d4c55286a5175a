package inventory

import (
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

// Fancy is an inventory that supports quantity information: products can be
// stocked and purchased in bulk, and purchases pick the highest quality
// units available.
type Fancy struct {
	products []product.Product
}

func NewFancy() *Fancy {
	return &Fancy{
		products: make([]product.Product, 0),
	}
}

func (inv *Fancy) AddProduct(barcode product.Barcode, quality product.Quality) {
	inv.products = append(inv.products, product.NewProduct(barcode, quality))
}

func (inv *Fancy) AddProducts(barcode product.Barcode, quality product.Quality, quantity int) error {
	for i := 0; i < quantity; i++ {
		inv.AddProduct(barcode, quality)
	}
	return nil
}

func (inv *Fancy) ExistsProduct(barcode product.Barcode) bool {
	return containsType(inv.products, barcode)
}

// RemoveProduct removes the highest quality product with the given barcode
// from the inventory, or nothing when none is stocked.
func (inv *Fancy) RemoveProduct(barcode product.Barcode) []product.Product {
	var removed []product.Product
	inv.products, removed = takeHighestQuality(inv.products, barcode)
	return removed
}

// RemoveProducts removes up to quantity units of the given type, preferring
// the highest quality units available. When stock runs short the removed
// units are returned without error.
func (inv *Fancy) RemoveProducts(barcode product.Barcode, quantity int) ([]product.Product, error) {
	removed := make([]product.Product, 0, quantity)
	qualities := product.Qualities()
	for i := len(qualities) - 1; i >= 0; i-- {
		if len(removed) == quantity {
			break
		}
		kept := make([]product.Product, 0, len(inv.products))
		for _, p := range inv.products {
			if len(removed) < quantity && p.Barcode == barcode && p.Quality == qualities[i] {
				removed = append(removed, p)
				continue
			}
			kept = append(kept, p)
		}
		inv.products = kept
	}
	return removed, nil
}

// AllProducts returns the stock grouped by type in catalogue order, keeping
// stocking order within a type.
func (inv *Fancy) AllProducts() []product.Product {
	all := make([]product.Product, 0, len(inv.products))
	for _, barcode := range product.Barcodes() {
		for _, p := range inv.products {
			if p.Barcode == barcode {
				all = append(all, p)
			}
		}
	}
	return all
}

// StockedQuantity reports how many units of the given type are stocked.
func (inv *Fancy) StockedQuantity(barcode product.Barcode) int {
	total := 0
	for _, p := range inv.products {
		if p.Barcode == barcode {
			total++
		}
	}
	return total
}
