// internal/domain/cart/entity.go
package cart

import "github.com/shopspring/decimal"

// StorageKey is the persistence key holding the cart line items
const StorageKey = "cart"

// LineItem is one product's entry in the cart. Product fields are copied at
// the time the product is first added.
type LineItem struct {
	ProductID     int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
}

// LineTotal returns price × quantity
func (i LineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Summary represents calculated cart totals
type Summary struct {
	ItemCount     int             `json:"item_count"`     // Number of unique items
	TotalQuantity int             `json:"total_quantity"` // Sum of all quantities
	SubTotal      decimal.Decimal `json:"sub_total"`
	Savings       decimal.Decimal `json:"savings"` // Against original prices
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
