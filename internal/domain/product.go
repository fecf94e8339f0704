// Package domain contains the core business entities and interfaces.
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultRelatedLimit is the number of related products returned when no
// positive limit is given.
const DefaultRelatedLimit = 4

// DefaultFeaturedLimit is the number of featured products returned when no
// positive limit is given.
const DefaultFeaturedLimit = 4

var (
	// ErrDuplicateProduct indicates that two catalog entries share an id.
	ErrDuplicateProduct = errors.New("duplicate product id")
	// ErrNegativePrice indicates a catalog entry priced below zero.
	ErrNegativePrice = errors.New("product price must not be negative")
)

// Product is an immutable catalog entry.
type Product struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Image       string          `json:"image" yaml:"image"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
}

// Catalog is the read-only product collection loaded at startup.
type Catalog struct {
	products []Product
	byID     map[int]int
}

// NewCatalog builds a Catalog from products, keeping their order.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d", ErrNegativePrice, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Related returns up to limit products sharing p's category, excluding p.
func (c *Catalog) Related(p Product, limit int) []Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := make([]Product, 0, limit)
	for _, candidate := range c.products {
		if len(out) == limit {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			out = append(out, candidate)
		}
	}
	return out
}

// Featured returns the first limit products.
func (c *Catalog) Featured(limit int) []Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > len(c.products) {
		limit = len(c.products)
	}
	out := make([]Product, limit)
	copy(out, c.products[:limit])
	return out
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
