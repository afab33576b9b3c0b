package cart

import (
	"math"
	"net/url"
	"testing"

	"github.com/dripvault/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priced(id, name string, price int64) *models.Product {
	return &models.Product{ID: id, Name: name, Price: models.Price(price)}
}

func unpriced(id, name string) *models.Product {
	return &models.Product{ID: id, Name: name}
}

func lineIDs(c *Cart) []string {
	var out []string
	for _, l := range c.Lines() {
		out = append(out, l.Product.ID)
	}
	return out
}

func TestAdd_MergesDuplicates(t *testing.T) {
	c := New()
	p := priced("a", "A", 10)

	c.Add(p)
	c.Add(p)

	require.Equal(t, 1, c.Len())
	line, ok := c.line("a")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestAdd_KeepsPositionOnMerge(t *testing.T) {
	c := New()
	a, b, d := priced("a", "A", 1), priced("b", "B", 2), unpriced("d", "D")

	c.Add(a)
	c.Add(b)
	c.Add(d)
	c.Add(a)

	assert.Equal(t, []string{"a", "b", "d"}, lineIDs(c))
	assert.Equal(t, 4, c.ItemCount())
}

func TestAdd_SharesProduct(t *testing.T) {
	c := New()
	p := priced("a", "A", 10)

	c.Add(p)

	line, _ := c.line("a")
	assert.Same(t, p, line.Product)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(priced("a", "A", 1))
	c.Add(priced("b", "B", 2))
	c.Add(priced("b", "B", 2))

	c.Remove("a")
	assert.Equal(t, []string{"b"}, lineIDs(c))

	before := c.Lines()
	c.Remove("missing")
	assert.Equal(t, before, c.Lines())
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		qty  int
		want int
	}{
		{5, 5},
		{1, 1},
		{0, 1},
		{-5, 1},
		{MaxQuantity, MaxQuantity},
		{MaxQuantity + 1, MaxQuantity},
		{math.MaxInt, MaxQuantity},
		{math.MinInt, 1},
	}

	for _, tt := range tests {
		c := New()
		c.Add(priced("a", "A", 1))

		c.SetQuantity("a", tt.qty)

		line, ok := c.line("a")
		require.True(t, ok, "qty %d removed the line", tt.qty)
		assert.Equal(t, tt.want, line.Quantity, "qty %d", tt.qty)
	}
}

func TestAdd_SaturatesAtMaxQuantity(t *testing.T) {
	c := New()
	a, b := priced("a", "A", 65), priced("b", "B", 1)
	c.Add(a)
	c.Add(b)
	c.SetQuantity("a", math.MaxInt)

	c.Add(a)

	line, ok := c.line("a")
	require.True(t, ok)
	assert.Equal(t, MaxQuantity, line.Quantity)
	assert.Equal(t, MaxQuantity+1, c.ItemCount())
	assert.True(t, c.Subtotal().IsPositive())
	assert.Equal(t, "999 x A @ €65\n1 x B @ €1\nTotal: €64936.00", c.CheckoutText("€"))
}

func TestSetQuantity_UnknownIDIsNoop(t *testing.T) {
	c := New()
	c.Add(priced("a", "A", 1))

	c.SetQuantity("b", 3)

	assert.Equal(t, []string{"a"}, lineIDs(c))
	assert.Equal(t, 1, c.ItemCount())
}

func TestSubtotal(t *testing.T) {
	c := New()
	p := priced("a", "A", 65)
	q := unpriced("b", "B")
	c.Add(p)
	c.SetQuantity("a", 2)
	c.Add(q)
	c.SetQuantity("b", 3)

	assert.True(t, decimal.NewFromInt(130).Equal(c.Subtotal()))
	assert.Equal(t, 5, c.ItemCount())
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add(priced("a", "A", 1))

	lines := c.Lines()
	lines[0].Quantity = 99

	line, _ := c.line("a")
	assert.Equal(t, 1, line.Quantity)
}

func TestZeroValueCart(t *testing.T) {
	var c Cart

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
	assert.Equal(t, 0, c.ItemCount())

	c.Add(unpriced("a", "A"))
	assert.False(t, c.IsEmpty())
}

func TestCheckoutText(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		c := New()
		assert.Equal(t, "", c.CheckoutText("€"))
		assert.NotContains(t, c.CheckoutText("€"), "Total:")
	})

	t.Run("priced item", func(t *testing.T) {
		c := New()
		c.Add(priced("x", "X", 65))
		assert.Equal(t, "1 x X @ €65\nTotal: €65.00", c.CheckoutText("€"))
	})

	t.Run("only price on request", func(t *testing.T) {
		c := New()
		c.Add(unpriced("y", "Yeezy Slides"))
		c.Add(unpriced("y", "Yeezy Slides"))
		assert.Equal(t, "2 x Yeezy Slides", c.CheckoutText("€"))
	})

	t.Run("mixed", func(t *testing.T) {
		c := New()
		c.Add(priced("a", "Milan Shirt", 65))
		c.Add(unpriced("b", "Trapstar Tee"))
		c.Add(priced("a", "Milan Shirt", 65))
		assert.Equal(t, "2 x Milan Shirt @ €65\n1 x Trapstar Tee\nTotal: €130.00", c.CheckoutText("€"))
	})

	t.Run("fractional price", func(t *testing.T) {
		c := New()
		price := decimal.RequireFromString("19.5")
		c.Add(&models.Product{ID: "f", Name: "F", Price: &price})
		c.SetQuantity("f", 3)
		assert.Equal(t, "3 x F @ $19.5\nTotal: $58.50", c.CheckoutText("$"))
	})
}

func TestCheckoutSummary_IsEncoded(t *testing.T) {
	c := New()
	c.Add(priced("x", "Tee & Shorts = Set", 65))

	summary := c.CheckoutSummary("€")

	assert.NotContains(t, summary, " ")
	assert.NotContains(t, summary, "\n")
	assert.NotContains(t, summary, "&")
	assert.NotContains(t, summary, "=")

	decoded, err := url.QueryUnescape(summary)
	require.NoError(t, err)
	assert.Equal(t, c.CheckoutText("€"), decoded)
}
