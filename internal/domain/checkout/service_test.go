package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

func setup(t *testing.T, delay time.Duration) (*Service, *cart.Service) {
	t.Helper()
	cartService, err := cart.NewService(context.Background(), persistence.NewMemory(), logger.Discard())
	require.NoError(t, err)

	cfg := &config.Config{Checkout: config.CheckoutConfig{TaxRate: 0.08, ProcessingDelay: delay}}
	return NewService(cartService, cfg, logger.Discard()), cartService
}

func validRequest() *Request {
	return &Request{
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "1 Main St",
		City:       "Springfield",
		State:      "IL",
		ZipCode:    "62701",
		CardNumber: "4242 4242 4242 1234",
		ExpiryDate: "12/30",
		CVV:        "123",
		NameOnCard: "Jane Doe",
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	svc, cartService := setup(t, 0)
	require.NoError(t, cartService.AddToCart(ctx, product.Product{ID: 1, Name: "A", Price: 10}))
	require.NoError(t, cartService.AddToCart(ctx, product.Product{ID: 1, Name: "A", Price: 10}))
	require.NoError(t, cartService.AddToCart(ctx, product.Product{ID: 2, Name: "B", Price: 5}))

	conf, err := svc.PlaceOrder(ctx, validRequest())
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, conf.OrderNumber)
	assert.Equal(t, "Jane Doe", conf.Name)
	assert.Equal(t, "1234", conf.CardLast4)
	assert.Len(t, conf.Items, 2)
	assert.Equal(t, "25.00", conf.Summary.SubTotal.StringFixed(2))
	assert.Equal(t, "2.00", conf.Summary.TaxAmount.StringFixed(2))
	assert.Equal(t, "27.00", conf.Summary.TotalAmount.StringFixed(2))

	assert.Empty(t, cartService.Items())
	assert.Equal(t, 0.0, cartService.GetCartTotal())

	stored, err := svc.GetOrder(conf.OrderNumber)
	require.NoError(t, err)
	assert.Same(t, conf, stored)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _ := setup(t, 0)

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderCancelledKeepsCart(t *testing.T) {
	svc, cartService := setup(t, time.Hour)
	require.NoError(t, cartService.AddToCart(context.Background(), product.Product{ID: 1, Price: 3}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PlaceOrder(ctx, validRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, cartService.ItemCount())
}

func TestPlaceOrderKeepsItemsAddedDuringProcessing(t *testing.T) {
	ctx := context.Background()
	svc, cartService := setup(t, time.Millisecond)
	headphones := product.Product{ID: 1, Name: "A", Price: 10}
	scarf := product.Product{ID: 2, Name: "B", Price: 5}
	require.NoError(t, cartService.AddToCart(ctx, headphones))

	// another request adds to the cart while payment is processing
	svc.wait = func(ctx context.Context, d time.Duration) error {
		require.NoError(t, cartService.AddToCart(ctx, scarf))
		require.NoError(t, cartService.AddToCart(ctx, headphones))
		return nil
	}

	conf, err := svc.PlaceOrder(ctx, validRequest())
	require.NoError(t, err)

	require.Len(t, conf.Items, 1)
	assert.Equal(t, 1, conf.Items[0].ProductID)
	assert.Equal(t, 1, conf.Items[0].Quantity)

	left := cartService.Items()
	require.Len(t, left, 2)
	assert.Equal(t, 1, left[0].ProductID)
	assert.Equal(t, 1, left[0].Quantity)
	assert.Equal(t, 2, left[1].ProductID)
	assert.Equal(t, 1, left[1].Quantity)
}

func TestGetOrderUnknown(t *testing.T) {
	svc, _ := setup(t, 0)

	_, err := svc.GetOrder("ORD-NOPE")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestLast4(t *testing.T) {
	assert.Equal(t, "1234", last4("4242-4242-4242-1234"))
	assert.Equal(t, "12", last4("12"))
	assert.Equal(t, "", last4("abcd"))
}
