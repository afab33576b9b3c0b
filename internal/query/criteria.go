// Package query derives the visible, ordered slice of the catalog from a
// shopper's search, filter and sort selection.
package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// All is the sentinel that disables the category or size filter.
const All = "All"

// Sort is the ordering applied after filtering.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// SortModes lists the accepted sort modes in display order.
var SortModes = []Sort{SortFeatured, SortPriceAsc, SortPriceDesc}

var ErrInvalidCriteria = errors.New("invalid criteria")

// Criteria is the session-local filter and sort selection.
type Criteria struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Size     string `json:"size"`
	Sort     Sort   `json:"sort"`
}

// Default returns criteria that select the whole catalog in catalog order.
func Default() Criteria {
	return Criteria{
		Category: All,
		Size:     All,
		Sort:     SortFeatured,
	}
}

// Reset restores every field to its default in one step.
func (c *Criteria) Reset() {
	*c = Default()
}

// Active reports whether any filter or non-default sort is in effect.
func (c Criteria) Active() bool {
	return c.Category != All ||
		c.Size != All ||
		strings.TrimSpace(c.Query) != "" ||
		c.Sort != SortFeatured
}

// Validate checks category and size against the closed sets and the sort
// mode against SortModes.
func (c Criteria) Validate(categories, sizes []string) error {
	if c.Category != All && !slices.Contains(categories, c.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCriteria, c.Category)
	}
	if c.Size != All && !slices.Contains(sizes, c.Size) {
		return fmt.Errorf("%w: unknown size %q", ErrInvalidCriteria, c.Size)
	}
	if _, err := ParseSort(string(c.Sort)); err != nil {
		return err
	}
	return nil
}

// ParseSort maps a sort name to a Sort. The empty string means featured.
func ParseSort(s string) (Sort, error) {
	if s == "" {
		return SortFeatured, nil
	}
	for _, mode := range SortModes {
		if Sort(s) == mode {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort %q", ErrInvalidCriteria, s)
}

// NormalizeSelection maps the empty string and any casing of "all" to All.
func NormalizeSelection(s string) string {
	if s == "" || strings.EqualFold(s, All) {
		return All
	}
	return s
}
