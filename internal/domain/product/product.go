package product

import (
	"fmt"
)

// Product is a value type: identity is the (Barcode, Quality) pair, so two
// products compare equal with == exactly when type and grade match.
type Product struct {
	Barcode Barcode
	Quality Quality
}

func NewProduct(barcode Barcode, quality Quality) Product {
	return Product{
		Barcode: barcode,
		Quality: quality,
	}
}

func (p Product) DisplayName() string {
	return p.Barcode.DisplayName()
}

func (p Product) BasePrice() int {
	return p.Barcode.BasePrice()
}

func (p Product) String() string {
	return fmt.Sprintf("%s: %dc *%s*", p.DisplayName(), p.BasePrice(), p.Quality)
}
