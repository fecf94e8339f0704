package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity a single cart line may hold.
const MaxQuantity = 999

// ErrInvalidQuantity indicates a quantity outside [1, MaxQuantity].
var ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")

// CartLine is a product held in the cart. Quantity is always within
// [1, MaxQuantity].
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered set of lines, unique by product id.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) index(productID int) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add puts qty units of p in the cart, merging with an existing line.
// Quantities below one are treated as one and a line saturates at
// MaxQuantity.
func (c *Cart) Add(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	if qty > MaxQuantity {
		qty = MaxQuantity
	}
	if i := c.index(p.ID); i >= 0 {
		if qty > MaxQuantity-c.lines[i].Quantity {
			c.lines[i].Quantity = MaxQuantity
			return
		}
		c.lines[i].Quantity += qty
		return
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: qty})
}

// Remove deletes the line for productID and reports whether one existed.
func (c *Cart) Remove(productID int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// UpdateQuantity replaces the quantity of the line for productID. It reports
// false when no such line exists.
func (c *Cart) UpdateQuantity(productID, qty int) (bool, error) {
	if qty < 1 || qty > MaxQuantity {
		return false, ErrInvalidQuantity
	}
	i := c.index(productID)
	if i < 0 {
		return false, nil
	}
	c.lines[i].Quantity = qty
	return true, nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Quantity returns the quantity held for productID, or zero.
func (c *Cart) Quantity(productID int) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal returns the sum of price*quantity over all lines. It is
// recomputed on every call.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
