package display

import (
	"fmt"
	"strings"

	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
)

const columnGap = 4

// ReceiptPrinter renders receipt data as boxed, column-aligned text.
type ReceiptPrinter struct {
	storeName string
}

func NewReceiptPrinter(storeName string) *ReceiptPrinter {
	return &ReceiptPrinter{
		storeName: storeName,
	}
}

func (p *ReceiptPrinter) Render(r *transaction.Receipt) string {
	if r.Pending {
		return p.RenderPending()
	}

	widths := columnWidths(r.Headings, r.Rows)

	lines := make([]string, 0, len(r.Rows)+8)
	if r.Code != "" {
		stamp := r.Code
		if !r.IssuedAt.IsZero() {
			stamp = fmt.Sprintf("%s    %s", r.Code, r.IssuedAt.Format("2006-01-02 15:04"))
		}
		lines = append(lines, stamp, "")
	}
	lines = append(lines, formatRow(r.Headings, widths))
	for _, row := range r.Rows {
		lines = append(lines, formatRow(row, widths))
	}
	lines = append(lines, "", "Total: "+r.Total)
	if r.Savings != "" {
		lines = append(lines, fmt.Sprintf("***** TOTAL SAVINGS: %s *****", r.Savings))
	}
	lines = append(lines, "", fmt.Sprintf("Thank you for shopping with us, %s!", r.CustomerName))

	return p.box(lines)
}

// RenderPending is the fixed notice shown while a transaction has not been
// finalised yet.
func (p *ReceiptPrinter) RenderPending() string {
	return p.box([]string{
		"Transaction still in progress",
		"Please finalise before printing a receipt",
	})
}

func (p *ReceiptPrinter) box(lines []string) string {
	width := len(p.storeName)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	border := strings.Repeat("=", width+4)

	var b strings.Builder
	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight("  "+center(p.storeName, width), " "))
	b.WriteByte('\n')
	b.WriteString(border)
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteString(strings.TrimRight("  "+line, " "))
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func columnWidths(headings []string, rows [][]string) []int {
	widths := make([]int, len(headings))
	for i, h := range headings {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		width := len(cell)
		if i < len(widths) {
			width = widths[i]
		}
		b.WriteString(fmt.Sprintf("%-*s", width+columnGap, cell))
	}
	return strings.TrimRight(b.String(), " ")
}
