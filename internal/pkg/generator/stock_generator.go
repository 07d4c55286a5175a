package generator

import (
	"math/rand"
	"time"

	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

// StockGenerator produces random catalogue products for demo seeding.
type StockGenerator struct {
	random *rand.Rand
}

func NewStockGenerator() *StockGenerator {
	return &StockGenerator{
		random: rand.New(rand.NewSource(time.Now().UTC().UnixNano())),
	}
}

func (g *StockGenerator) GenerateProduct() product.Product {
	barcodes := product.Barcodes()
	qualities := product.Qualities()

	barcode := barcodes[g.random.Intn(len(barcodes))]
	quality := qualities[g.random.Intn(len(qualities))]

	return product.NewProduct(barcode, quality)
}

func (g *StockGenerator) GenerateStock(count int) []product.Product {
	stock := make([]product.Product, 0, count)
	for i := 0; i < count; i++ {
		stock = append(stock, g.GenerateProduct())
	}
	return stock
}
