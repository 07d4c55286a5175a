package customer

import (
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

type Cart struct {
	products []product.Product
}

func NewCart() *Cart {
	return &Cart{
		products: make([]product.Product, 0),
	}
}

func (c *Cart) AddProduct(p product.Product) {
	c.products = append(c.products, p)
}

// Contents returns the products in the order they were added. The returned
// slice is a copy; mutating it does not touch the cart.
func (c *Cart) Contents() []product.Product {
	contents := make([]product.Product, len(c.products))
	copy(contents, c.products)
	return contents
}

func (c *Cart) Clear() {
	c.products = c.products[:0]
}

func (c *Cart) IsEmpty() bool {
	return len(c.products) == 0
}
