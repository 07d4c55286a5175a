package money

import (
	"github.com/shopspring/decimal"
)

// FormatCents renders an integer cent amount as a dollar string with two
// decimal places, e.g. 50 -> "$0.50".
func FormatCents(cents int) string {
	return "$" + decimal.New(int64(cents), -2).StringFixed(2)
}
