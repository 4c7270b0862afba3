package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
products:
  - {id: 1, name: Beta, price: 20, category: A, rating: 4.1, featured: false}
  - {id: 2, name: alpha, price: 5, originalPrice: 8, category: B, rating: 4.9, featured: true}
  - {id: 3, name: Gamma, price: 12.5, category: A, rating: 3.0, featured: true}
  - {id: 4, name: Delta, price: 20, category: A, rating: 4.5, featured: false}
`

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func newTestCatalog(t *testing.T) *Catalog {
	c, err := ParseCatalog([]byte(testCatalog))
	require.NoError(t, err)
	return c
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)
	assert.NotEmpty(t, c.List(ListOptions{}))
	assert.Equal(t, AllCategories, c.Categories()[0])
}

func TestParseCatalogRejectsDuplicates(t *testing.T) {
	_, err := ParseCatalog([]byte("products:\n  - {id: 1, name: a, price: 1}\n  - {id: 1, name: b, price: 2}\n"))
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	c := newTestCatalog(t)

	p, err := c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "alpha", p.Name)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 8.0, *p.OriginalPrice)
	assert.Equal(t, 3.0, p.Discount())

	_, err = c.Get(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestList(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name string
		opts ListOptions
		want []int
	}{
		{name: "featured first", opts: ListOptions{}, want: []int{2, 3, 1, 4}},
		{name: "price low", opts: ListOptions{SortBy: SortPriceLow}, want: []int{2, 3, 1, 4}},
		{name: "price high keeps ties stable", opts: ListOptions{SortBy: SortPriceHigh}, want: []int{1, 4, 3, 2}},
		{name: "rating", opts: ListOptions{SortBy: SortRating}, want: []int{2, 4, 1, 3}},
		{name: "name ignores case", opts: ListOptions{SortBy: SortName}, want: []int{2, 1, 4, 3}},
		{name: "category filter", opts: ListOptions{Category: "A", SortBy: SortName}, want: []int{1, 4, 3}},
		{name: "all categories", opts: ListOptions{Category: AllCategories, SortBy: SortPriceLow}, want: []int{2, 3, 1, 4}},
		{name: "unknown category", opts: ListOptions{Category: "Z"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.List(tt.opts)))
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "A", "B"}, newTestCatalog(t).Categories())
}

func TestRelated(t *testing.T) {
	c := newTestCatalog(t)

	related, err := c.Related(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids(related))

	related, err = c.Related(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(related))

	_, err = c.Related(42, 4)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
