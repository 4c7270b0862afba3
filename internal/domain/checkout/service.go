// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
)

// Service runs the simulated checkout against the cart
type Service struct {
	cart   *cart.Service
	config *config.Config
	log    *logrus.Logger

	mu     sync.RWMutex
	orders map[string]*Confirmation

	// wait simulates payment processing
	wait func(ctx context.Context, d time.Duration) error
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		cart:   cartService,
		config: cfg,
		log:    log,
		orders: make(map[string]*Confirmation),
		wait:   sleep,
	}
}

// PlaceOrder snapshots the cart, waits the configured processing delay,
// removes the purchased units from the cart and returns the confirmation.
// Items added while the order is processing stay in the cart.
func (s *Service) PlaceOrder(ctx context.Context, req *Request) (*Confirmation, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if delay := s.config.Checkout.ProcessingDelay; delay > 0 {
		if err := s.wait(ctx, delay); err != nil {
			return nil, fmt.Errorf("checkout cancelled: %w", err)
		}
	}

	confirmation := &Confirmation{
		OrderNumber: "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		Email:       req.Email,
		Name:        strings.TrimSpace(req.FirstName + " " + req.LastName),
		ShippingAddress: ShippingAddress{
			Address: req.Address,
			City:    req.City,
			State:   req.State,
			ZipCode: req.ZipCode,
		},
		CardLast4: last4(req.CardNumber),
		Items:     items,
		Summary:   cart.Summarize(items, s.config.Checkout.TaxRate),
		PlacedAt:  time.Now().UTC(),
	}

	// only the purchased units leave the cart
	if err := s.cart.RemoveItems(ctx, items); err != nil {
		// the order is placed; a stale persisted cart is recoverable
		s.log.WithError(err).WithField("order_number", confirmation.OrderNumber).Warn("Cart cleared in memory only")
	}

	s.mu.Lock()
	s.orders[confirmation.OrderNumber] = confirmation
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"order_number": confirmation.OrderNumber,
		"items":        confirmation.Summary.TotalQuantity,
		"total":        confirmation.Summary.TotalAmount.StringFixed(2),
	}).Info("Order placed")

	return confirmation, nil
}

// GetOrder returns a confirmation placed during this process lifetime
func (s *Service) GetOrder(orderNumber string) (*Confirmation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	confirmation, ok := s.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return confirmation, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func last4(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
