package catalog

import (
	"sort"
	"strings"

	"glamora/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter returns the products matching every predicate in f, ordered by
// f.SortBy. It never mutates its input and returns the same output for the
// same input.
func Filter(products []model.Product, f Filters) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, f) {
			filtered = append(filtered, p)
		}
	}
	return Sort(filtered, f.SortBy)
}

// matches reports whether the product passes all five predicates: search,
// category, price range, stock, and sale.
func matches(p *model.Product, f Filters) bool {
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			return false
		}
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if c == p.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Price range uses the comparison price, inclusive on both ends.
	price := p.ComparisonPrice()
	if price < f.PriceMin || price > f.PriceMax {
		return false
	}

	if f.InStockOnly && !p.InStock {
		return false
	}

	if f.OnSaleOnly && !p.OnSale() {
		return false
	}

	return true
}

// Sort returns a copy of products ordered by the given key. Ties keep the
// original collection order, so the sort must be stable. Unknown keys fall
// back to the featured ordering.
func Sort(products []model.Product, sortBy string) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ComparisonPrice() < sorted[j].ComparisonPrice()
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ComparisonPrice() > sorted[j].ComparisonPrice()
		})
	case SortName:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsNew && !sorted[j].IsNew
		})
	case SortFeatured:
		fallthrough
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].IsBestSeller != sorted[j].IsBestSeller {
				return sorted[i].IsBestSeller
			}
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}
