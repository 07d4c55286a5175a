package ports

import (
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

type Inventory interface {
	AddProduct(barcode product.Barcode, quality product.Quality)
	AddProducts(barcode product.Barcode, quality product.Quality, quantity int) error
	ExistsProduct(barcode product.Barcode) bool
	RemoveProduct(barcode product.Barcode) []product.Product
	RemoveProducts(barcode product.Barcode, quantity int) ([]product.Product, error)
	AllProducts() []product.Product
}
