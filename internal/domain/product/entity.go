// internal/domain/product/entity.go
package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)

// Product is one catalog entry
type Product struct {
	ID            int      `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Price         float64  `yaml:"price" json:"price"`
	OriginalPrice *float64 `yaml:"originalPrice" json:"originalPrice,omitempty"`
	Category      string   `yaml:"category" json:"category"`
	Description   string   `yaml:"description" json:"description"`
	Image         string   `yaml:"image" json:"image"`
	Rating        float64  `yaml:"rating" json:"rating"`
	Reviews       int      `yaml:"reviews" json:"reviews"`
	Badge         string   `yaml:"badge" json:"badge,omitempty"`
	Features      []string `yaml:"features" json:"features,omitempty"`
	InStock       bool     `yaml:"inStock" json:"inStock"`
	Featured      bool     `yaml:"featured" json:"featured"`
}

// Discount returns how much cheaper the product is than its original price
func (p Product) Discount() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return *p.OriginalPrice - p.Price
}

// Sort orders accepted by Catalog.List
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// AllCategories matches every category
const AllCategories = "All"

// ListOptions filters and orders a catalog listing
type ListOptions struct {
	Category string `form:"category"`
	SortBy   string `form:"sort"`
}
