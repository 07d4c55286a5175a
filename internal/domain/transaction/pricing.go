package transaction

import (
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

func purchasedTypes(purchases []product.Product) []product.Barcode {
	seen := make(map[product.Barcode]bool, len(purchases))
	for _, p := range purchases {
		seen[p.Barcode] = true
	}
	types := make([]product.Barcode, 0, len(seen))
	for _, barcode := range product.Barcodes() {
		if seen[barcode] {
			types = append(types, barcode)
		}
	}
	return types
}

func quantityOf(purchases []product.Product, barcode product.Barcode) int {
	qty := 0
	for _, p := range purchases {
		if p.Barcode == barcode {
			qty++
		}
	}
	return qty
}

func baseSubtotal(purchases []product.Product, barcode product.Barcode) int {
	return quantityOf(purchases, barcode) * barcode.BasePrice()
}

// discountedSubtotal prices all units of a type with an integer percentage
// discount applied, rounding fractional cents up.
func discountedSubtotal(purchases []product.Product, barcode product.Barcode, discount int) int {
	raw := quantityOf(purchases, barcode) * barcode.BasePrice() * (100 - discount)
	return ceilCents(raw)
}

// ceilCents converts a hundredths-scaled amount to whole cents, rounding
// toward positive infinity.
func ceilCents(raw int) int {
	if raw >= 0 {
		return (raw + 99) / 100
	}
	return raw / 100
}
