package app

import (
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// FreeShippingAbove is the subtotal that must be exceeded to ship for free.
	FreeShippingAbove = decimal.NewFromInt(50)
	// FlatShipping is charged when the subtotal does not exceed FreeShippingAbove.
	FlatShipping = decimal.NewFromInt(5)
	// TaxRate is applied to the subtotal.
	TaxRate = decimal.RequireFromString("0.08")
)

// Summary holds the figures shown at checkout.
type Summary struct {
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// Summarize derives shipping, tax and grand total from the cart subtotal.
// An empty cart ships for nothing.
func Summarize(cart *domain.Cart) Summary {
	subtotal := cart.Subtotal()
	shipping := FlatShipping
	if cart.Len() == 0 || subtotal.GreaterThan(FreeShippingAbove) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return Summary{
		ItemCount: cart.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
	}
}
