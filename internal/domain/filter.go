package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "all"

// PriceRange is an inclusive price interval with 0 <= Min <= Max.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// NewPriceRange normalises the bounds: negatives become zero and reversed
// bounds are swapped.
func NewPriceRange(lo, hi decimal.Decimal) PriceRange {
	if lo.IsNegative() {
		lo = decimal.Zero
	}
	if hi.IsNegative() {
		hi = decimal.Zero
	}
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	return PriceRange{Min: lo, Max: hi}
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

// FilterCriteria selects a subset of the catalog. The zero value matches
// everything.
type FilterCriteria struct {
	Category string      `json:"category"`
	Search   string      `json:"search"`
	Price    *PriceRange `json:"price,omitempty"`
}

func (f FilterCriteria) hasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}

// Filter returns the products matching every supplied facet, in catalog order.
func (c *Catalog) Filter(f FilterCriteria) []Product {
	needle := strings.ToLower(f.Search)
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.hasCategory() && p.Category != f.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if f.Price != nil && !f.Price.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}
