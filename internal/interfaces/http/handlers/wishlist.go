// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// AddToWishlistRequest saves a product
type AddToWishlistRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
}

// BulkAddToWishlistRequest saves several products at once
type BulkAddToWishlistRequest struct {
	ProductIDs []int `json:"product_ids" binding:"required,min=1,max=50,dive,min=1"`
}

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
	log             *logrus.Logger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service, log *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		log:             log,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    h.wishlistService.Items(),
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.wishlistService.AddToWishlist(c.Request.Context(), req.ProductID)
	if errors.Is(err, product.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	h.respond(c, http.StatusCreated, "Item added to wishlist successfully", err)
}

// BulkAddToWishlist handles POST /wishlist/items/bulk
func (h *WishlistHandler) BulkAddToWishlist(c *gin.Context) {
	var req BulkAddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.wishlistService.BulkAddToWishlist(c.Request.Context(), req.ProductIDs)
	body := gin.H{
		"message": "Bulk add completed",
		"data":    result,
	}
	if err != nil {
		h.log.WithError(err).Warn("Wishlist change not persisted")
		body["warning"] = persistWarning
	}

	c.JSON(http.StatusCreated, body)
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	err := h.wishlistService.RemoveFromWishlist(c.Request.Context(), productID)
	h.respond(c, http.StatusOK, "Item removed from wishlist successfully", err)
}

// ToggleWishlist handles POST /wishlist/items/:id/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	saved, err := h.wishlistService.Toggle(c.Request.Context(), productID)
	if errors.Is(err, product.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	message := "Removed from wishlist"
	if saved {
		message = "Added to wishlist"
	}
	body := gin.H{
		"message": message,
		"data": gin.H{
			"in_wishlist": saved,
		},
	}
	if err != nil {
		h.log.WithError(err).Warn("Wishlist change not persisted")
		body["warning"] = persistWarning
	}

	c.JSON(http.StatusOK, body)
}

// CheckItemInWishlist handles GET /wishlist/items/:id
func (h *WishlistHandler) CheckItemInWishlist(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist status retrieved successfully",
		"data": gin.H{
			"in_wishlist": h.wishlistService.IsInWishlist(productID),
		},
	})
}

// MoveToCart handles POST /wishlist/items/:id/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	err := h.wishlistService.MoveToCart(c.Request.Context(), productID)
	switch {
	case errors.Is(err, wishlist.ErrNotInWishlist), errors.Is(err, product.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in wishlist",
		})
		return
	case errors.Is(err, product.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Product is out of stock",
		})
		return
	}

	h.respond(c, http.StatusOK, "Item moved to cart successfully", err)
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	err := h.wishlistService.ClearWishlist(c.Request.Context())
	h.respond(c, http.StatusOK, "Wishlist cleared successfully", err)
}

// GetWishlistSummary handles GET /wishlist/summary
func (h *WishlistHandler) GetWishlistSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist summary retrieved successfully",
		"data":    h.wishlistService.Summary(),
	})
}

func (h *WishlistHandler) respond(c *gin.Context, status int, message string, persistErr error) {
	body := gin.H{
		"message": message,
		"data":    h.wishlistService.Items(),
	}
	if persistErr != nil {
		h.log.WithError(persistErr).WithField("request_id", c.GetString("request_id")).Warn("Wishlist change not persisted")
		body["warning"] = persistWarning
	}
	c.JSON(status, body)
}
