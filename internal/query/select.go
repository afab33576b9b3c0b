package query

import (
	"slices"
	"strings"

	"github.com/dripvault/storefront/internal/models"
)

// Select filters the catalog by category, size and text, then sorts it.
// The catalog is never modified; the result is always a fresh slice.
//
// Text matching is a case-insensitive substring test against name,
// category and condition. Price sorts are stable and rank a missing price
// as zero, so price-on-request items lead ascending order and trail
// descending order.
func Select(catalog []models.Product, c Criteria) []models.Product {
	needle := ""
	if strings.TrimSpace(c.Query) != "" {
		needle = strings.ToLower(c.Query)
	}

	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if c.Category != All && p.Category != c.Category {
			continue
		}
		if c.Size != All && p.Size != c.Size {
			continue
		}
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		out = append(out, p)
	}

	switch c.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return a.PriceOrZero().Cmp(b.PriceOrZero())
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return b.PriceOrZero().Cmp(a.PriceOrZero())
		})
	}

	return out
}

func matchesText(p models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.Condition), needle)
}
