package inventory

import (
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

// takeHighestQuality removes the single best unit of the given type from
// products: grades are scanned from highest to lowest, taking the
// earliest-stocked unit within a grade. Returns the shrunk slice and the
// removed unit, or the untouched slice and an empty list when no unit of the
// type is stocked.
func takeHighestQuality(products []product.Product, barcode product.Barcode) ([]product.Product, []product.Product) {
	qualities := product.Qualities()
	for i := len(qualities) - 1; i >= 0; i-- {
		for j, p := range products {
			if p.Barcode == barcode && p.Quality == qualities[i] {
				return append(products[:j], products[j+1:]...), []product.Product{p}
			}
		}
	}
	return products, []product.Product{}
}

func containsType(products []product.Product, barcode product.Barcode) bool {
	for _, p := range products {
		if p.Barcode == barcode {
			return true
		}
	}
	return false
}
