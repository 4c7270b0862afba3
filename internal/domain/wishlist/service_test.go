package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

const outOfStockID = 7

func newTestService(t *testing.T, store persistence.Adapter) (*Service, *cart.Service) {
	t.Helper()
	ctx := context.Background()

	catalog, err := product.NewCatalog()
	require.NoError(t, err)

	cartService, err := cart.NewService(ctx, store, logger.Discard())
	require.NoError(t, err)

	s, err := NewService(ctx, store, catalog, cartService, logger.Discard())
	require.NoError(t, err)
	return s, cartService
}

func productIDs(views []ItemView) []int {
	ids := make([]int, len(views))
	for i, v := range views {
		ids[i] = v.ProductID
	}
	return ids
}

func TestAddAndRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, persistence.NewMemory())

	require.NoError(t, s.AddToWishlist(ctx, 3))
	require.NoError(t, s.AddToWishlist(ctx, 1))
	require.NoError(t, s.AddToWishlist(ctx, 3))

	assert.Equal(t, []int{3, 1}, productIDs(s.Items()))
	assert.True(t, s.IsInWishlist(1))

	require.NoError(t, s.RemoveFromWishlist(ctx, 3))
	require.NoError(t, s.RemoveFromWishlist(ctx, 99))
	assert.Equal(t, []int{1}, productIDs(s.Items()))
}

func TestAddUnknownProduct(t *testing.T) {
	s, _ := newTestService(t, persistence.NewMemory())

	err := s.AddToWishlist(context.Background(), 404)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
	assert.Empty(t, s.Items())
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, persistence.NewMemory())

	saved, err := s.Toggle(ctx, 2)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = s.Toggle(ctx, 2)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, s.Items())
}

func TestBulkAdd(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, persistence.NewMemory())
	require.NoError(t, s.AddToWishlist(ctx, 1))

	result, err := s.BulkAddToWishlist(ctx, []int{1, 2, 404, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, result.Added)
	assert.Equal(t, []int{1, 2}, result.Skipped)
	assert.Equal(t, []int{404}, result.Failed)
}

func TestMoveToCart(t *testing.T) {
	ctx := context.Background()
	s, cartService := newTestService(t, persistence.NewMemory())
	require.NoError(t, s.AddToWishlist(ctx, 1))

	require.NoError(t, s.MoveToCart(ctx, 1))
	assert.False(t, s.IsInWishlist(1))
	assert.Equal(t, 1, cartService.ItemCount())

	assert.ErrorIs(t, s.MoveToCart(ctx, 1), ErrNotInWishlist)
}

func TestMoveToCartOutOfStock(t *testing.T) {
	ctx := context.Background()
	s, cartService := newTestService(t, persistence.NewMemory())
	require.NoError(t, s.AddToWishlist(ctx, outOfStockID))

	assert.ErrorIs(t, s.MoveToCart(ctx, outOfStockID), product.ErrOutOfStock)
	assert.True(t, s.IsInWishlist(outOfStockID))
	assert.Zero(t, cartService.ItemCount())
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, persistence.NewMemory())
	require.NoError(t, s.AddToWishlist(ctx, 1))
	require.NoError(t, s.AddToWishlist(ctx, outOfStockID))

	summary := s.Summary()
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 1, summary.AvailableItems)
	assert.Equal(t, 1, summary.UnavailableItems)
	assert.True(t, summary.TotalValue.IsPositive())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemory()
	s, _ := newTestService(t, store)
	require.NoError(t, s.AddToWishlist(ctx, 4))
	require.NoError(t, s.AddToWishlist(ctx, 2))

	reloaded, _ := newTestService(t, store)
	assert.Equal(t, s.Items(), reloaded.Items())
}

func TestRehydrateDropsUnknownAndDuplicateIDs(t *testing.T) {
	store := persistence.NewMemory()
	blob := `[{"id":2,"addedAt":"2024-01-01T00:00:00Z"},{"id":404,"addedAt":"2024-01-01T00:00:00Z"},{"id":2,"addedAt":"2024-01-02T00:00:00Z"}]`
	require.NoError(t, store.Save(context.Background(), StorageKey, []byte(blob)))

	s, _ := newTestService(t, store)
	assert.Equal(t, []int{2}, productIDs(s.Items()))
}

type saveFailingStore struct {
	persistence.Adapter
}

func (saveFailingStore) Save(ctx context.Context, key string, data []byte) error {
	return errors.New("disk full")
}

func TestSaveFailureKeepsChange(t *testing.T) {
	s, _ := newTestService(t, saveFailingStore{persistence.NewMemory()})

	assert.Error(t, s.AddToWishlist(context.Background(), 1))
	assert.True(t, s.IsInWishlist(1))
}
