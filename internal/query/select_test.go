package query

import (
	"strings"
	"testing"

	"github.com/dripvault/storefront/internal/models"
	"github.com/dripvault/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSelect_DefaultReturnsWholeCatalogInOrder(t *testing.T) {
	catalog := repository.SeedProducts()

	got := Select(catalog, Default())

	assert.Equal(t, ids(catalog), ids(got))
}

func TestSelect_DoesNotMutateCatalog(t *testing.T) {
	catalog := repository.SeedProducts()
	before := ids(catalog)

	got := Select(catalog, Criteria{Category: All, Size: All, Sort: SortPriceDesc})
	require.NotEmpty(t, got)
	got[0] = models.Product{ID: "changed"}

	assert.Equal(t, before, ids(catalog))
}

func TestSelect_Filters(t *testing.T) {
	catalog := repository.SeedProducts()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "category",
			criteria: Criteria{Category: "Footwear", Size: All, Sort: SortFeatured},
			want:     []string{"dv-006"},
		},
		{
			name:     "size compared as string",
			criteria: Criteria{Category: All, Size: "44", Sort: SortFeatured},
			want:     []string{"dv-006"},
		},
		{
			name:     "category and size",
			criteria: Criteria{Category: "Designer Clothing", Size: "M", Sort: SortFeatured},
			want:     []string{"dv-004", "dv-005"},
		},
		{
			name:     "text on name is case-insensitive",
			criteria: Criteria{Query: "CORTEIZ", Category: All, Size: All, Sort: SortFeatured},
			want:     []string{"dv-003", "dv-004"},
		},
		{
			name:     "text on category",
			criteria: Criteria{Query: "footwear", Category: All, Size: All, Sort: SortFeatured},
			want:     []string{"dv-006"},
		},
		{
			name:     "text on condition",
			criteria: Criteria{Query: "like new", Category: All, Size: All, Sort: SortFeatured},
			want:     []string{"dv-005", "dv-008"},
		},
		{
			name:     "whitespace query is ignored",
			criteria: Criteria{Query: "   ", Category: "Footwear", Size: All, Sort: SortFeatured},
			want:     []string{"dv-006"},
		},
		{
			name:     "no match",
			criteria: Criteria{Query: "hat", Category: All, Size: All, Sort: SortFeatured},
			want:     []string{},
		},
		{
			name:     "unknown category selects nothing",
			criteria: Criteria{Category: "Hats", Size: All, Sort: SortFeatured},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Select(catalog, tt.criteria)))
		})
	}
}

func TestSelect_QueryMatchesConditionOnly(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Name: "Plain Tee", Category: "Designer Clothing", Condition: "New with tags", Size: "M"},
		{ID: "b", Name: "Plain Hoodie", Category: "Designer Clothing", Condition: "Used", Size: "M"},
	}

	got := Select(catalog, Criteria{Query: "new", Category: All, Size: All, Sort: SortFeatured})

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestSelect_MatchesEveryStageExactly(t *testing.T) {
	catalog := repository.SeedProducts()
	queries := []string{"", "shirt", "NEW", "tee", "like new"}
	categories := append([]string{All}, repository.Categories...)
	sizes := append([]string{All}, repository.Sizes...)

	for _, q := range queries {
		for _, cat := range categories {
			for _, size := range sizes {
				var want []string
				for _, p := range catalog {
					haystack := strings.ToLower(p.Name + "\x00" + p.Category + "\x00" + p.Condition)
					if (cat == All || p.Category == cat) &&
						(size == All || p.Size == size) &&
						(q == "" || strings.Contains(haystack, strings.ToLower(q))) {
						want = append(want, p.ID)
					}
				}

				for _, sort := range SortModes {
					c := Criteria{Query: q, Category: cat, Size: size, Sort: sort}
					got := ids(Select(catalog, c))
					if sort == SortFeatured {
						assert.Equal(t, append([]string{}, want...), got, "%+v", c)
					} else {
						assert.ElementsMatch(t, want, got, "%+v", c)
					}
				}
			}
		}
	}
}

func TestSelect_PriceSortTreatsMissingAsZero(t *testing.T) {
	catalog := []models.Product{
		{ID: "ten", Price: models.Price(10)},
		{ID: "none"},
	}
	c := Criteria{Category: All, Size: All}

	c.Sort = SortPriceAsc
	assert.Equal(t, []string{"none", "ten"}, ids(Select(catalog, c)))

	c.Sort = SortPriceDesc
	assert.Equal(t, []string{"ten", "none"}, ids(Select(catalog, c)))
}

func TestSelect_PriceSortIsStable(t *testing.T) {
	catalog := repository.SeedProducts()
	c := Default()

	c.Sort = SortPriceAsc
	assert.Equal(t,
		[]string{"dv-004", "dv-005", "dv-006", "dv-001", "dv-002", "dv-003", "dv-007", "dv-008"},
		ids(Select(catalog, c)))

	c.Sort = SortPriceDesc
	assert.Equal(t,
		[]string{"dv-008", "dv-007", "dv-003", "dv-001", "dv-002", "dv-004", "dv-005", "dv-006"},
		ids(Select(catalog, c)))
}
