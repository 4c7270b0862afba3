// internal/domain/wishlist/entity.go
package wishlist

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/product"
)

// StorageKey is the persistence key holding the wishlist
const StorageKey = "wishlist"

var ErrNotInWishlist = errors.New("item not found in wishlist")

// Item is one saved product
type Item struct {
	ProductID int       `json:"id"`
	AddedAt   time.Time `json:"addedAt"`
}

// ItemView is a wishlist item joined with its current catalog entry
type ItemView struct {
	Item
	Product     product.Product `json:"product"`
	IsAvailable bool            `json:"isAvailable"`
}

// Summary provides summary information
type Summary struct {
	TotalItems       int             `json:"total_items"`
	AvailableItems   int             `json:"available_items"`
	UnavailableItems int             `json:"unavailable_items"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

// BulkAddResult represents bulk add operation result
type BulkAddResult struct {
	Added   []int `json:"added"`
	Skipped []int `json:"skipped"`
	Failed  []int `json:"failed"`
}
