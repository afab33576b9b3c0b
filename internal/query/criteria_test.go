package query

import (
	"testing"

	"github.com/dripvault/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_Active(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Criteria)
		want   bool
	}{
		{"defaults", func(c *Criteria) {}, false},
		{"blank query", func(c *Criteria) { c.Query = "  \t" }, false},
		{"query", func(c *Criteria) { c.Query = "milan" }, true},
		{"category", func(c *Criteria) { c.Category = "Footwear" }, true},
		{"size", func(c *Criteria) { c.Size = "S" }, true},
		{"sort", func(c *Criteria) { c.Sort = SortPriceAsc }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.Active())
		})
	}
}

func TestCriteria_Reset(t *testing.T) {
	c := Criteria{Query: "tee", Category: "Footwear", Size: "44", Sort: SortPriceDesc}

	c.Reset()

	assert.Equal(t, Default(), c)
	assert.False(t, c.Active())
}

func TestCriteria_Validate(t *testing.T) {
	cats, sizes := repository.Categories, repository.Sizes

	assert.NoError(t, Default().Validate(cats, sizes))
	assert.NoError(t, Criteria{Category: "Footwear", Size: "44", Sort: SortPriceAsc}.Validate(cats, sizes))

	for _, c := range []Criteria{
		{Category: "Hats", Size: All, Sort: SortFeatured},
		{Category: All, Size: "XXS", Sort: SortFeatured},
		{Category: All, Size: All, Sort: "cheapest"},
	} {
		assert.ErrorIs(t, c.Validate(cats, sizes), ErrInvalidCriteria)
	}
}

func TestParseSort(t *testing.T) {
	got, err := ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, SortFeatured, got)

	got, err = ParseSort("price_desc")
	require.NoError(t, err)
	assert.Equal(t, SortPriceDesc, got)

	_, err = ParseSort("price")
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}

func TestNormalizeSelection(t *testing.T) {
	assert.Equal(t, All, NormalizeSelection(""))
	assert.Equal(t, All, NormalizeSelection("all"))
	assert.Equal(t, All, NormalizeSelection("ALL"))
	assert.Equal(t, "Footwear", NormalizeSelection("Footwear"))
}
