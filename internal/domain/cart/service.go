// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

// Service owns the shopper's cart and mirrors it to the persistence adapter
// after every mutation. The in-memory items are authoritative: a failed save
// is reported to the caller but the mutation is kept.
type Service struct {
	mu    sync.Mutex
	items []LineItem
	store persistence.Adapter
	log   *logrus.Logger
}

// NewService creates the cart service and rehydrates it from store.
// A missing or malformed blob starts an empty cart.
func NewService(ctx context.Context, store persistence.Adapter, log *logrus.Logger) (*Service, error) {
	s := &Service{
		items: []LineItem{},
		store: store,
		log:   log,
	}

	var items []LineItem
	err := persistence.LoadJSON(ctx, store, StorageKey, &items)
	switch {
	case err == nil:
		s.items = sanitize(items)
	case errors.Is(err, persistence.ErrNotFound):
	case errors.Is(err, persistence.ErrMalformed):
		log.WithError(err).Warn("Discarding unreadable persisted cart")
	default:
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	log.WithField("items", len(s.items)).Debug("Cart rehydrated")
	return s, nil
}

// AddToCart adds one unit of p, creating the line item on first add
func (s *Service) AddToCart(ctx context.Context, p product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, LineItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			Category:      p.Category,
			OriginalPrice: copyPrice(p.OriginalPrice),
			Quantity:      1,
		})
	}

	return s.sync(ctx)
}

// UpdateQuantity sets the quantity of a line item; quantity <= 0 removes it.
// Unknown products are ignored.
func (s *Service) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity

	return s.sync(ctx)
}

// RemoveFromCart removes a line item if present
func (s *Service) RemoveFromCart(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	return s.sync(ctx)
}

// ClearCart empties the cart
func (s *Service) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []LineItem{}
	return s.sync(ctx)
}

// RemoveItems subtracts a previously read snapshot of line items from the
// cart, dropping lines that reach zero. Units added after the snapshot stay.
func (s *Service) RemoveItems(ctx context.Context, snapshot []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, taken := range snapshot {
		i := s.indexOf(taken.ProductID)
		if i < 0 {
			continue
		}
		changed = true
		if s.items[i].Quantity <= taken.Quantity {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity -= taken.Quantity
		}
	}

	if !changed {
		return nil
	}
	return s.sync(ctx)
}

// Items returns a copy of the line items in insertion order
func (s *Service) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, len(s.items))
	for i, item := range s.items {
		item.OriginalPrice = copyPrice(item.OriginalPrice)
		items[i] = item
	}
	return items
}

// ItemCount returns the sum of all quantities
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// GetCartTotal returns Σ price × quantity
func (s *Service) GetCartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return subtotal(s.items).InexactFloat64()
}

// Summary computes the cart totals with tax applied at taxRate.
// Shipping is always free.
func (s *Service) Summary(taxRate float64) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return summarize(s.items, taxRate)
}

// Summarize computes totals for an arbitrary set of line items
func Summarize(items []LineItem, taxRate float64) Summary {
	return summarize(items, taxRate)
}

func summarize(items []LineItem, taxRate float64) Summary {
	var summary Summary

	summary.ItemCount = len(items)
	summary.Savings = decimal.Zero
	for _, item := range items {
		summary.TotalQuantity += item.Quantity
		if item.OriginalPrice != nil && *item.OriginalPrice > item.Price {
			diff := decimal.NewFromFloat(*item.OriginalPrice).Sub(decimal.NewFromFloat(item.Price))
			summary.Savings = summary.Savings.Add(diff.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	summary.SubTotal = subtotal(items).Round(2)
	summary.ShippingCost = decimal.Zero
	summary.TaxRate = decimal.NewFromFloat(taxRate)
	summary.TaxAmount = summary.SubTotal.Mul(summary.TaxRate).Round(2)
	summary.TotalAmount = summary.SubTotal.Add(summary.ShippingCost).Add(summary.TaxAmount)
	summary.Savings = summary.Savings.Round(2)

	return summary
}

func subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s *Service) indexOf(productID int) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// sync mirrors the whole cart to the adapter; callers hold s.mu
func (s *Service) sync(ctx context.Context) error {
	if err := persistence.SaveJSON(ctx, s.store, StorageKey, s.items); err != nil {
		s.log.WithError(err).Error("Failed to persist cart")
		return err
	}
	return nil
}

// sanitize drops rows a previous version could not have written: zero
// quantities and repeated product ids (first row wins, quantities merged).
func sanitize(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	index := make(map[int]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i, ok := index[item.ProductID]; ok {
			out[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(out)
		out = append(out, item)
	}
	return out
}

func copyPrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
