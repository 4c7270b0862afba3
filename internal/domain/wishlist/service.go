// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

// Service keeps the shopper's saved products. Like the cart it is mirrored to
// the persistence adapter after every change and stays authoritative in memory.
type Service struct {
	mu          sync.Mutex
	items       []Item
	store       persistence.Adapter
	catalog     *product.Catalog
	cartService *cart.Service
	log         *logrus.Logger
	now         func() time.Time
}

// NewService creates the wishlist service and rehydrates it from store.
// Saved ids no longer in the catalog are dropped.
func NewService(ctx context.Context, store persistence.Adapter, catalog *product.Catalog, cartService *cart.Service, log *logrus.Logger) (*Service, error) {
	s := &Service{
		items:       []Item{},
		store:       store,
		catalog:     catalog,
		cartService: cartService,
		log:         log,
		now:         time.Now,
	}

	var items []Item
	err := persistence.LoadJSON(ctx, store, StorageKey, &items)
	switch {
	case err == nil:
		s.items = s.sanitize(items)
	case errors.Is(err, persistence.ErrNotFound):
	case errors.Is(err, persistence.ErrMalformed):
		log.WithError(err).Warn("Discarding unreadable persisted wishlist")
	default:
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	return s, nil
}

// AddToWishlist saves a product; saving it twice is a no-op
func (s *Service) AddToWishlist(ctx context.Context, productID int) error {
	if _, err := s.catalog.Get(productID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(productID) >= 0 {
		return nil
	}
	s.items = append(s.items, Item{
		ProductID: productID,
		AddedAt:   s.now().UTC().Truncate(time.Millisecond),
	})

	return s.sync(ctx)
}

// RemoveFromWishlist removes a product if saved
func (s *Service) RemoveFromWishlist(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	return s.sync(ctx)
}

// Toggle flips whether productID is saved and reports the new state
func (s *Service) Toggle(ctx context.Context, productID int) (bool, error) {
	if s.IsInWishlist(productID) {
		return false, s.RemoveFromWishlist(ctx, productID)
	}
	return true, s.AddToWishlist(ctx, productID)
}

// ClearWishlist removes every saved product
func (s *Service) ClearWishlist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	return s.sync(ctx)
}

// IsInWishlist reports whether productID is saved
func (s *Service) IsInWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOf(productID) >= 0
}

// BulkAddToWishlist saves several products. Unknown ids are reported as failed.
func (s *Service) BulkAddToWishlist(ctx context.Context, productIDs []int) (*BulkAddResult, error) {
	result := &BulkAddResult{
		Added:   []int{},
		Skipped: []int{},
		Failed:  []int{},
	}

	var persistErr error
	for _, id := range productIDs {
		switch {
		case s.IsInWishlist(id):
			result.Skipped = append(result.Skipped, id)
		default:
			err := s.AddToWishlist(ctx, id)
			if errors.Is(err, product.ErrProductNotFound) {
				result.Failed = append(result.Failed, id)
				continue
			}
			if err != nil {
				persistErr = err
			}
			result.Added = append(result.Added, id)
		}
	}

	return result, persistErr
}

// MoveToCart adds one unit of a saved product to the cart and unsaves it
func (s *Service) MoveToCart(ctx context.Context, productID int) error {
	if !s.IsInWishlist(productID) {
		return ErrNotInWishlist
	}

	p, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}
	if !p.InStock {
		return product.ErrOutOfStock
	}

	if err := s.cartService.AddToCart(ctx, p); err != nil {
		s.log.WithError(err).WithField("product_id", productID).Warn("Moved item not persisted in cart")
	}

	return s.RemoveFromWishlist(ctx, productID)
}

// Items returns the saved products in the order they were added
func (s *Service) Items() []ItemView {
	s.mu.Lock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		p, err := s.catalog.Get(item.ProductID)
		if err != nil {
			continue
		}
		views = append(views, ItemView{
			Item:        item,
			Product:     p,
			IsAvailable: p.InStock,
		})
	}
	return views
}

// Summary aggregates the saved products
func (s *Service) Summary() Summary {
	summary := Summary{TotalValue: decimal.Zero}
	for _, v := range s.Items() {
		summary.TotalItems++
		if v.IsAvailable {
			summary.AvailableItems++
		} else {
			summary.UnavailableItems++
		}
		summary.TotalValue = summary.TotalValue.Add(decimal.NewFromFloat(v.Product.Price))
	}
	summary.TotalValue = summary.TotalValue.Round(2)
	return summary
}

func (s *Service) indexOf(productID int) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// sync mirrors the wishlist to the adapter; callers hold s.mu
func (s *Service) sync(ctx context.Context) error {
	if err := persistence.SaveJSON(ctx, s.store, StorageKey, s.items); err != nil {
		s.log.WithError(err).Error("Failed to persist wishlist")
		return err
	}
	return nil
}

func (s *Service) sanitize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if seen[item.ProductID] {
			continue
		}
		if _, err := s.catalog.Get(item.ProductID); err != nil {
			continue
		}
		seen[item.ProductID] = true
		out = append(out, item)
	}
	return out
}
