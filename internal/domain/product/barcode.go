package product

import (
	"fmt"
	"strings"
)

type Barcode int

const (
	Egg Barcode = iota
	Milk
	Jam
	Wool
)

// Barcodes returns the catalogue in its fixed enumeration order.
func Barcodes() []Barcode {
	return []Barcode{Egg, Milk, Jam, Wool}
}

func (b Barcode) DisplayName() string {
	switch b {
	case Egg:
		return "egg"
	case Milk:
		return "milk"
	case Jam:
		return "jam"
	case Wool:
		return "wool"
	default:
		return "unknown"
	}
}

func (b Barcode) BasePrice() int {
	switch b {
	case Egg:
		return 50
	case Milk:
		return 440
	case Jam:
		return 670
	case Wool:
		return 2850
	default:
		return 0
	}
}

// ParseBarcode resolves a product name, case-insensitively, to its barcode.
func ParseBarcode(name string) (Barcode, error) {
	for _, b := range Barcodes() {
		if strings.EqualFold(b.DisplayName(), name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown product: %s", name)
}

func (b Barcode) String() string {
	switch b {
	case Egg:
		return "EGG"
	case Milk:
		return "MILK"
	case Jam:
		return "JAM"
	case Wool:
		return "WOOL"
	default:
		return "UNKNOWN"
	}
}
