package compare

import (
	"slices"

	"github.com/lukman83/pricewise/internal/models"
	"github.com/lukman83/pricewise/internal/seller"
)

// DefaultPageSize is the maximum number of offers returned.
const DefaultPageSize = 8

// Ranking controls the post-merge pipeline.
type Ranking struct {
	// TrustedOnly drops sellers that are not in Catalog's whitelist.
	TrustedOnly bool
	Catalog     *seller.Catalog
	PageSize    int
}

// Rank turns merged provider output into the final result page: sort by
// price, drop unpriced records, optionally keep trusted sellers only, keep the
// cheapest offer per seller, then truncate. The input slice is not modified.
func Rank(products []models.Product, r Ranking) []models.Product {
	out := slices.Clone(products)
	sortByPrice(out)
	out = slices.DeleteFunc(out, func(p models.Product) bool { return !p.HasPrice() })
	if r.TrustedOnly {
		catalog := r.Catalog
		if catalog == nil {
			catalog = seller.DefaultCatalog()
		}
		out = slices.DeleteFunc(out, func(p models.Product) bool { return !catalog.IsTrusted(p.Source) })
	}
	out = dedupeBySeller(out)
	sortByPrice(out)

	size := r.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if len(out) > size {
		out = out[:size]
	}
	return out
}

// sortByPrice sorts ascending by price; ties keep their relative order.
func sortByPrice(products []models.Product) {
	slices.SortStableFunc(products, func(a, b models.Product) int {
		switch {
		case a.PriceAmount < b.PriceAmount:
			return -1
		case a.PriceAmount > b.PriceAmount:
			return 1
		}
		return 0
	})
}

// dedupeBySeller keeps the cheapest offer per normalized seller. Input must
// be price-sorted; the first record of each seller wins.
func dedupeBySeller(products []models.Product) []models.Product {
	seen := make(map[string]bool, len(products))
	out := products[:0]
	for _, p := range products {
		key := seller.Normalize(p.Source)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
