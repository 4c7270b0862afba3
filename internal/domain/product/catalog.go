// internal/domain/product/catalog.go
package product

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the read-only product catalog
type Catalog struct {
	products []Product
	byID     map[int]int
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// NewCatalog loads the catalog bundled with the binary
func NewCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog builds a catalog from a YAML document
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		products: file.Products,
		byID:     make(map[int]int, len(file.Products)),
	}
	for i, p := range file.Products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d in catalog", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has a negative price", p.ID)
		}
		c.byID[p.ID] = i
	}

	return c, nil
}

// Get returns the product with the given id
func (c *Catalog) Get(id int) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// List returns the products in a category, ordered by opts.SortBy
func (c *Catalog) List(opts ListOptions) []Product {
	filtered := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if opts.Category == "" || opts.Category == AllCategories || p.Category == opts.Category {
			filtered = append(filtered, p)
		}
	}

	switch opts.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Featured && !filtered[j].Featured })
	}

	return filtered
}

// Categories returns "All" followed by each category in catalog order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{AllCategories}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Related returns other products from the same category, at most limit when limit > 0
func (c *Catalog) Related(id, limit int) ([]Product, error) {
	p, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	related := []Product{}
	for _, other := range c.products {
		if limit > 0 && len(related) == limit {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			related = append(related, other)
		}
	}
	return related, nil
}
