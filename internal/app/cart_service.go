package app

import (
	"context"
	"errors"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	// ErrProductNotFound indicates that the requested product is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrLineNotFound indicates that the cart holds no line for the product.
	ErrLineNotFound = errors.New("product not in cart")
)

// CartService encapsulates the session-scoped cart use cases. Every
// operation loads the cart from its slot, applies the change and saves it.
type CartService struct {
	catalog *domain.Catalog
	carts   *CartPersister
	log     *logrus.Logger
}

// NewCartService creates a CartService backed by the given catalog and persister.
func NewCartService(catalog *domain.Catalog, carts *CartPersister, log *logrus.Logger) *CartService {
	return &CartService{catalog: catalog, carts: carts, log: log}
}

// Get returns the cart of a session.
func (s *CartService) Get(ctx context.Context, sessionID string) *domain.Cart {
	return s.carts.Load(ctx, sessionID)
}

// Add puts qty units of a product into the session cart.
func (s *CartService) Add(ctx context.Context, sessionID string, productID, qty int) (*domain.Cart, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	cart := s.carts.Load(ctx, sessionID)
	cart.Add(product, qty)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"session":  sessionID,
		"product":  productID,
		"quantity": cart.Quantity(productID),
	}).Debug("cart line added")
	return cart, nil
}

// Remove deletes a product's line from the session cart. Removing an absent
// line is not an error.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	cart := s.carts.Load(ctx, sessionID)
	if !cart.Remove(productID) {
		return cart, nil
	}
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of a product's line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID, qty int) (*domain.Cart, error) {
	cart := s.carts.Load(ctx, sessionID)
	found, err := cart.UpdateQuantity(productID, qty)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrLineNotFound
	}
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the session cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	cart := domain.NewCart()
	return s.carts.Save(ctx, sessionID, cart)
}

// Summary returns the checkout summary of the session cart.
func (s *CartService) Summary(ctx context.Context, sessionID string) Summary {
	return Summarize(s.carts.Load(ctx, sessionID))
}
