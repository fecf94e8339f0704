package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// Slot names appended to the session id to form storage keys.
const (
	cartSlot = "cart"
	userSlot = "user"
)

var errCorruptSlot = errors.New("corrupt slot")

// SlotKey returns the storage key of a named slot within a session.
func SlotKey(sessionID, slot string) string {
	return sessionID + ":" + slot
}

// ProductLookup resolves product ids to catalog entries.
type ProductLookup interface {
	Get(id int) (domain.Product, bool)
}

type storedLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CartPersister saves and restores carts in a SlotStore.
type CartPersister struct {
	store   domain.SlotStore
	catalog ProductLookup
	log     *logrus.Logger
}

// NewCartPersister creates a CartPersister resolving products in catalog.
func NewCartPersister(store domain.SlotStore, catalog ProductLookup, log *logrus.Logger) *CartPersister {
	return &CartPersister{store: store, catalog: catalog, log: log}
}

// Save writes the full line sequence of cart.
func (p *CartPersister) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	lines := cart.Lines()
	stored := make([]storedLine, 0, len(lines))
	for _, l := range lines {
		stored = append(stored, storedLine{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	if err := p.store.Put(ctx, SlotKey(sessionID, cartSlot), raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Load restores the cart of a session. A missing, unreadable or corrupt slot
// yields an empty cart; corrupt data is logged and discarded.
func (p *CartPersister) Load(ctx context.Context, sessionID string) *domain.Cart {
	key := SlotKey(sessionID, cartSlot)
	raw, ok, err := p.store.Get(ctx, key)
	if err != nil {
		p.log.WithError(err).WithField("key", key).Warn("cart slot unreadable, starting empty")
		return domain.NewCart()
	}
	if !ok {
		return domain.NewCart()
	}

	cart, err := p.decode(raw)
	if err != nil {
		p.log.WithError(err).WithField("key", key).Warn("discarding corrupt cart slot")
		if err := p.store.Delete(ctx, key); err != nil {
			p.log.WithError(err).WithField("key", key).Warn("delete corrupt cart slot")
		}
		return domain.NewCart()
	}
	return cart
}

// Discard removes the cart slot of a session.
func (p *CartPersister) Discard(ctx context.Context, sessionID string) error {
	return p.store.Delete(ctx, SlotKey(sessionID, cartSlot))
}

func (p *CartPersister) decode(raw []byte) (*domain.Cart, error) {
	var stored []storedLine
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptSlot, err)
	}
	cart := domain.NewCart()
	for _, l := range stored {
		if l.Quantity < 1 || l.Quantity > domain.MaxQuantity {
			return nil, fmt.Errorf("%w: product %d has quantity %d", errCorruptSlot, l.ProductID, l.Quantity)
		}
		if cart.Quantity(l.ProductID) > 0 {
			return nil, fmt.Errorf("%w: duplicate product %d", errCorruptSlot, l.ProductID)
		}
		product, ok := p.catalog.Get(l.ProductID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown product %d", errCorruptSlot, l.ProductID)
		}
		cart.Add(product, l.Quantity)
	}
	return cart, nil
}

// UserPersister saves and restores the session user in a SlotStore.
type UserPersister struct {
	store domain.SlotStore
	log   *logrus.Logger
}

// NewUserPersister creates a UserPersister.
func NewUserPersister(store domain.SlotStore, log *logrus.Logger) *UserPersister {
	return &UserPersister{store: store, log: log}
}

// Save writes the session user.
func (p *UserPersister) Save(ctx context.Context, sessionID string, user *domain.SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := p.store.Put(ctx, SlotKey(sessionID, userSlot), raw); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Load returns the session user, or nil when absent or corrupt.
func (p *UserPersister) Load(ctx context.Context, sessionID string) *domain.SessionUser {
	key := SlotKey(sessionID, userSlot)
	raw, ok, err := p.store.Get(ctx, key)
	if err != nil {
		p.log.WithError(err).WithField("key", key).Warn("user slot unreadable")
		return nil
	}
	if !ok {
		return nil
	}
	var u domain.SessionUser
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
		p.log.WithError(err).WithField("key", key).Warn("discarding corrupt user slot")
		if err := p.store.Delete(ctx, key); err != nil {
			p.log.WithError(err).WithField("key", key).Warn("delete corrupt user slot")
		}
		return nil
	}
	return &u
}

// Discard removes the user slot of a session.
func (p *UserPersister) Discard(ctx context.Context, sessionID string) error {
	return p.store.Delete(ctx, SlotKey(sessionID, userSlot))
}
