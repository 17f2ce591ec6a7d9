// Package catalog holds the pure product query engine (filtering and
// sorting) and the seed-file loaders used to populate the catalogue.
package catalog

import (
	"context"

	"glamora/internal/model"
)

// Sort keys accepted by the query engine. Unknown keys fall back to
// SortFeatured.
const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// Filters is a product query configuration. The zero value of a field means
// the corresponding predicate passes everything.
type Filters struct {
	SearchQuery string
	Categories  []string
	PriceMin    float64
	PriceMax    float64
	InStockOnly bool
	OnSaleOnly  bool
	SortBy      string
}

// DefaultFilters returns a configuration that matches every product, priced
// within the storefront's slider range.
func DefaultFilters() Filters {
	return Filters{
		PriceMin: 0,
		PriceMax: 100,
		SortBy:   SortFeatured,
	}
}

// Loader defines the interface for loading catalogue seed files.
type Loader interface {
	// Load reads a gzipped seed file of JSON-encoded products, one per
	// line, validating each record.
	Load(ctx context.Context, filePath string) ([]model.Product, error)
}
