package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/newsletter"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/pdf"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type unhealthyStore struct {
	persistence.Adapter
}

func (unhealthyStore) Health(ctx context.Context) error {
	return errors.New("connection refused")
}

func newTestServer(t *testing.T, store persistence.Adapter) *Server {
	t.Helper()
	ctx := context.Background()
	log := logger.Discard()

	cfg := &config.Config{
		App:      config.AppConfig{Name: "EliteStore", Version: "test", Environment: "development"},
		Server:   config.ServerConfig{Port: "0", MaxBodyBytes: 1 << 20},
		Storage:  config.StorageConfig{Backend: config.StorageMemory},
		Checkout: config.CheckoutConfig{TaxRate: 0.08},
	}

	catalog, err := product.NewCatalog()
	require.NoError(t, err)
	cartService, err := cart.NewService(ctx, store, log)
	require.NoError(t, err)
	newsletterService, err := newsletter.NewService(ctx, store, log)
	require.NoError(t, err)
	wishlistService, err := wishlist.NewService(ctx, store, catalog, cartService, log)
	require.NoError(t, err)

	deps := routes.Dependencies{
		Config:     cfg,
		Logger:     log,
		Catalog:    catalog,
		Cart:       cartService,
		Checkout:   checkout.NewService(cartService, cfg, log),
		Newsletter: newsletterService,
		Wishlist:   wishlistService,
		Receipts:   pdf.NewService(cfg),
	}

	return NewServer(cfg, log, deps, store, nil)
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, persistence.NewMemory())

	w := get(s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealthCheckStorageDown(t *testing.T) {
	s := newTestServer(t, unhealthyStore{persistence.NewMemory()})

	w := get(s, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "storage unreachable")
}

func TestReadiness(t *testing.T) {
	s := newTestServer(t, persistence.NewMemory())

	w := get(s, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready"`)
}

func TestAPIMounted(t *testing.T) {
	s := newTestServer(t, persistence.NewMemory())

	assert.Equal(t, http.StatusOK, get(s, "/api/v1/products").Code)
	assert.Equal(t, http.StatusOK, get(s, "/api/v1/cart").Code)
	assert.Equal(t, http.StatusOK, get(s, "/api/v1/newsletter/stats").Code)
	assert.Equal(t, http.StatusOK, get(s, "/").Code)
}
