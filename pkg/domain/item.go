package domain

import (
	"strconv"
	"strings"
	"time"
)

// Item represents a catalog entry (part or service) with its price
type Item struct {
	ID        int64
	Name      string
	Price     float64
	Stock     *int // nil when stock is not tracked
	CreatedAt time.Time
	UpdatedAt time.Time
}

// reply policies for a price query about an item missing from the catalog
const (
	NotFoundBackorder = "backorder" // offer to order the part
	NotFoundSimilar   = "similar"   // suggest catalog items sharing a word with the query
)

// FormatPrice renders a price the Brazilian way, 250.5 -> "250,50"
func FormatPrice(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
