// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
)

// persistWarning accompanies a successful response whose change could not be
// written to storage
const persistWarning = "Change applied but not saved; it will be lost on restart"

// AddToCartRequest adds quantity units of a catalog product
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
	Quantity  int `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// UpdateCartItemRequest sets a line item's quantity; zero removes it
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// CartResponse is the cart as returned to clients
type CartResponse struct {
	Items   []cart.LineItem `json:"items"`
	Summary cart.Summary    `json:"summary"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	catalog     *product.Catalog
	config      *config.Config
	log         *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, catalog *product.Catalog, cfg *config.Config, log *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		catalog:     catalog,
		config:      cfg,
		log:         log,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.snapshot(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	p, err := h.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	if !p.InStock {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Product is out of stock",
		})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var persistErr error
	for i := 0; i < quantity; i++ {
		if err := h.cartService.AddToCart(c.Request.Context(), p); err != nil {
			persistErr = err
		}
	}

	h.respond(c, "Item added to cart successfully", persistErr)
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.cartService.UpdateQuantity(c.Request.Context(), productID, *req.Quantity)
	h.respond(c, "Cart item updated successfully", err)
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	err := h.cartService.RemoveFromCart(c.Request.Context(), productID)
	h.respond(c, "Item removed from cart successfully", err)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	err := h.cartService.ClearCart(c.Request.Context())
	h.respond(c, "Cart cleared successfully", err)
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cartService.ItemCount(),
		},
	})
}

func (h *CartHandler) snapshot() CartResponse {
	items := h.cartService.Items()
	return CartResponse{
		Items:   items,
		Summary: cart.Summarize(items, h.config.Checkout.TaxRate),
	}
}

// respond writes the updated cart. The mutation already happened in memory,
// so a persistence failure is reported as a warning instead of an error.
func (h *CartHandler) respond(c *gin.Context, message string, persistErr error) {
	body := gin.H{
		"message": message,
		"data":    h.snapshot(),
	}
	if persistErr != nil {
		h.log.WithError(persistErr).WithField("request_id", c.GetString("request_id")).Warn("Cart change not persisted")
		body["warning"] = persistWarning
	}
	c.JSON(http.StatusOK, body)
}
