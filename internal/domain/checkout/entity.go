// internal/domain/checkout/entity.go
package checkout

import (
	"errors"
	"time"

	"github.com/your-org/storefront/internal/domain/cart"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// Request is the checkout form. Payment fields are only inspected for the
// last four card digits; nothing is charged.
type Request struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zip_code" binding:"required"`
	CardNumber string `json:"card_number" binding:"required,min=4"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	NameOnCard string `json:"name_on_card" binding:"required"`
}

// ShippingAddress represents where the order ships to
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Confirmation is the outcome of a simulated order
type Confirmation struct {
	OrderNumber     string          `json:"order_number"`
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CardLast4       string          `json:"card_last4"`
	Items           []cart.LineItem `json:"items"`
	Summary         cart.Summary    `json:"summary"`
	PlacedAt        time.Time       `json:"placed_at"`
}
