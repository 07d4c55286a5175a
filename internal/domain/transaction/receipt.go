package transaction

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yuzvak/farmshop-service/internal/domain/product"
	"github.com/yuzvak/farmshop-service/internal/pkg/money"
)

// Receipt is the display-ready form of a transaction, independent of any
// particular renderer.
type Receipt struct {
	Pending      bool
	Headings     []string
	Rows         [][]string
	Total        string
	CustomerName string
	Savings      string
	Code         string
	IssuedAt     time.Time
}

// Receipt assembles the printable data for this transaction. While the
// transaction is still active only the Pending flag is set.
func (t *Transaction) Receipt() *Receipt {
	if !t.finalised {
		return &Receipt{Pending: true}
	}

	r := &Receipt{
		Total:        money.FormatCents(t.Total()),
		CustomerName: t.customer.Name,
		Code:         t.code,
		IssuedAt:     t.finalisedAt,
	}

	switch t.kind {
	case kindPlain:
		r.Headings = []string{"Item", "Price"}
		for _, p := range t.Purchases() {
			r.Rows = append(r.Rows, []string{p.DisplayName(), money.FormatCents(p.BasePrice())})
		}
	case kindCategorised:
		r.Headings = []string{"Item", "Qty", "Price (ea.)", "Subtotal"}
		r.Rows = t.categorisedRows(false)
	case kindSpecialSale:
		r.Headings = []string{"Item", "Qty", "Price (ea.)", "Subtotal"}
		r.Rows = t.categorisedRows(true)
		if saved := t.TotalSaved(); saved > 0 {
			r.Savings = money.FormatCents(saved)
		}
	}
	return r
}

// categorisedRows builds one row per purchased type, in catalogue order.
// Discounted types carry a trailing note cell.
func (t *Transaction) categorisedRows(withDiscounts bool) [][]string {
	rows := make([][]string, 0)
	for _, barcode := range product.Barcodes() {
		qty := t.PurchaseQuantity(barcode)
		if qty == 0 {
			continue
		}
		row := []string{
			barcode.DisplayName(),
			strconv.Itoa(qty),
			money.FormatCents(barcode.BasePrice()),
			money.FormatCents(t.PurchaseSubtotal(barcode)),
		}
		if withDiscounts {
			if discount := t.DiscountAmount(barcode); discount > 0 {
				row = append(row, fmt.Sprintf("Discount applied! %d%% off %s", discount, barcode.DisplayName()))
			}
		}
		rows = append(rows, row)
	}
	return rows
}
