package transaction

import (
	"github.com/yuzvak/farmshop-service/internal/domain/product"
)

// History is the record of all past transactions.
type History struct {
	transactions []*Transaction
}

func NewHistory() *History {
	return &History{
		transactions: make([]*Transaction, 0),
	}
}

// RecordTransaction adds the given transaction to the record. The
// transaction must already be finalised.
func (h *History) RecordTransaction(t *Transaction) {
	h.transactions = append(h.transactions, t)
}

// LastTransaction returns the most recently recorded transaction, or nil
// when nothing has been recorded yet.
func (h *History) LastTransaction() *Transaction {
	if len(h.transactions) == 0 {
		return nil
	}
	return h.transactions[len(h.transactions)-1]
}

func (h *History) GrossEarnings() int {
	total := 0
	for _, t := range h.transactions {
		total += t.Total()
	}
	return total
}

// GrossEarningsByType sums the base price of every sold unit of the given
// type. Discounts are not reflected here.
func (h *History) GrossEarningsByType(barcode product.Barcode) int {
	total := 0
	for _, t := range h.transactions {
		for _, p := range t.Purchases() {
			if p.Barcode == barcode {
				total += p.BasePrice()
			}
		}
	}
	return total
}

func (h *History) TotalTransactionsMade() int {
	return len(h.transactions)
}

func (h *History) TotalProductsSold() int {
	sold := 0
	for _, t := range h.transactions {
		sold += len(t.Purchases())
	}
	return sold
}

func (h *History) TotalProductsSoldByType(barcode product.Barcode) int {
	sold := 0
	for _, t := range h.transactions {
		for _, p := range t.Purchases() {
			if p.Barcode == barcode {
				sold++
			}
		}
	}
	return sold
}

// HighestGrossingTransaction returns the transaction with the highest
// reported total. Ties go to the transaction recorded first; an empty
// history yields nil.
func (h *History) HighestGrossingTransaction() *Transaction {
	highestGross := -1
	var highest *Transaction
	for _, t := range h.transactions {
		if total := t.Total(); total > highestGross {
			highest = t
			highestGross = total
		}
	}
	return highest
}

// MostPopularProduct returns the product type with the highest quantity sold
// overall. Ties go to the type appearing first in the catalogue; an empty
// history yields Egg.
func (h *History) MostPopularProduct() product.Barcode {
	popular := product.Egg
	bestSold := -1
	for _, barcode := range product.Barcodes() {
		if sold := h.TotalProductsSoldByType(barcode); sold > bestSold {
			popular = barcode
			bestSold = sold
		}
	}
	return popular
}

func (h *History) AverageSpendPerVisit() float64 {
	if h.TotalTransactionsMade() == 0 {
		return 0
	}
	return float64(h.GrossEarnings()) / float64(h.TotalTransactionsMade())
}

// AverageProductDiscount averages the configured discount percentage for the
// given type across special sales. The denominator counts every recorded
// transaction, not just the special sales carrying a discount.
func (h *History) AverageProductDiscount(barcode product.Barcode) float64 {
	discounts := 0
	for _, t := range h.transactions {
		if t.kind == kindSpecialSale {
			discounts += t.DiscountAmount(barcode)
		}
	}
	if discounts <= 0 {
		return 0
	}
	return float64(discounts) / float64(h.TotalTransactionsMade())
}
