package product

import (
	"fmt"
	"strings"
)

type Quality int

const (
	Regular Quality = iota
	Silver
	Gold
	Iridium
)

// Qualities returns all grades in ascending order.
func Qualities() []Quality {
	return []Quality{Regular, Silver, Gold, Iridium}
}

// ParseQuality resolves a grade name, case-insensitively, to its quality.
func ParseQuality(name string) (Quality, error) {
	for _, q := range Qualities() {
		if strings.EqualFold(q.String(), name) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality: %s", name)
}

func (q Quality) String() string {
	switch q {
	case Regular:
		return "REGULAR"
	case Silver:
		return "SILVER"
	case Gold:
		return "GOLD"
	case Iridium:
		return "IRIDIUM"
	default:
		return "UNKNOWN"
	}
}
