// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/checkout"
)

// ReceiptRenderer produces order receipts
type ReceiptRenderer interface {
	RenderReceiptHTML(order *checkout.Confirmation) (string, error)
	GenerateReceipt(order *checkout.Confirmation) (*bytes.Buffer, error)
}

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	receipts        ReceiptRenderer
	log             *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, receipts ReceiptRenderer, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		receipts:        receipts,
		log:             log,
	}
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.checkoutService.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Order processing timed out",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    confirmation,
	})
}

// GetOrder handles GET /checkout/orders/:number
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order, ok := h.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// GetReceipt handles GET /checkout/orders/:number/receipt.
// ?format=html returns the rendered page instead of a PDF.
func (h *CheckoutHandler) GetReceipt(c *gin.Context) {
	order, ok := h.lookup(c)
	if !ok {
		return
	}

	if c.Query("format") == "html" {
		html, err := h.receipts.RenderReceiptHTML(order)
		if err != nil {
			h.log.WithError(err).WithField("order_number", order.OrderNumber).Error("Failed to render receipt")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to render receipt",
			})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	pdf, err := h.receipts.GenerateReceipt(order)
	if err != nil {
		h.log.WithError(err).WithField("order_number", order.OrderNumber).Error("Failed to generate receipt PDF")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}

func (h *CheckoutHandler) lookup(c *gin.Context) (*checkout.Confirmation, bool) {
	order, err := h.checkoutService.GetOrder(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return nil, false
	}
	return order, true
}
