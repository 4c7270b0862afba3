// internal/interfaces/http/handlers/newsletter.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/newsletter"
)

// SubscribeRequest signs an address up for the email sequence
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"max=100"`
}

// NewsletterHandler handles subscriber and email-sequence endpoints
type NewsletterHandler struct {
	newsletterService *newsletter.Service
	log               *logrus.Logger
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterService *newsletter.Service, log *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		log:               log,
	}
}

// AddSubscriber handles POST /newsletter/subscribers
func (h *NewsletterHandler) AddSubscriber(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	subscriber, err := h.newsletterService.AddSubscriber(c.Request.Context(), strings.TrimSpace(req.Email), strings.TrimSpace(req.Name))
	body := gin.H{
		"message": "Subscribed successfully",
		"data":    subscriber,
	}
	if err != nil {
		h.log.WithError(err).WithField("subscriber_id", subscriber.ID).Warn("Subscriber not persisted")
		body["warning"] = persistWarning
	}

	c.JSON(http.StatusCreated, body)
}

// ListSubscribers handles GET /newsletter/subscribers
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribers retrieved successfully",
		"data":    h.newsletterService.Subscribers(),
	})
}

// GetSubscriberEmails handles GET /newsletter/subscribers/:id/emails
func (h *NewsletterHandler) GetSubscriberEmails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Subscriber emails retrieved successfully",
		"data":    h.newsletterService.GetSubscriberEmails(c.Param("id")),
	})
}

// ListEmails handles GET /newsletter/emails?status=all|scheduled|sent
func (h *NewsletterHandler) ListEmails(c *gin.Context) {
	var status newsletter.EmailStatus
	switch s := c.DefaultQuery("status", "all"); s {
	case "all":
	case string(newsletter.EmailStatusScheduled), string(newsletter.EmailStatusSent):
		status = newsletter.EmailStatus(s)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status filter",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Emails retrieved successfully",
		"data":    h.newsletterService.Emails(status),
	})
}

// SendEmail handles POST /newsletter/emails/:id/send
func (h *NewsletterHandler) SendEmail(c *gin.Context) {
	sent, err := h.newsletterService.MarkEmailAsSent(c.Request.Context(), c.Param("id"))

	message := "Email marked as sent"
	if !sent {
		message = "Email already sent or not found"
	}

	body := gin.H{
		"message": message,
		"data": gin.H{
			"sent": sent,
		},
	}
	if err != nil {
		h.log.WithError(err).WithField("email_id", c.Param("id")).Warn("Email status not persisted")
		body["warning"] = persistWarning
	}

	c.JSON(http.StatusOK, body)
}

// DispatchDue handles POST /newsletter/dispatch?now=RFC3339
func (h *NewsletterHandler) DispatchDue(c *gin.Context) {
	now := time.Now()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid time, expected RFC3339",
				"details": err.Error(),
			})
			return
		}
		now = parsed
	}

	sent, err := h.newsletterService.DispatchDue(c.Request.Context(), now)
	body := gin.H{
		"message": "Due emails dispatched",
		"data": gin.H{
			"count":  len(sent),
			"emails": sent,
		},
	}
	if err != nil {
		h.log.WithError(err).WithField("count", len(sent)).Warn("Dispatched emails not persisted")
		body["warning"] = persistWarning
	}

	c.JSON(http.StatusOK, body)
}

// GetStats handles GET /newsletter/stats
func (h *NewsletterHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Email stats retrieved successfully",
		"data":    h.newsletterService.GetEmailStats(),
	})
}

// GetTemplates handles GET /newsletter/templates
func (h *NewsletterHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Templates retrieved successfully",
		"data":    newsletter.Templates(),
	})
}
