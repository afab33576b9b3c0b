// Package cart is the in-memory cart ledger: ordered lines keyed by product
// id, with merge-on-add and clamped quantities.
package cart

import (
	"fmt"
	"strings"

	"github.com/dripvault/storefront/internal/checkout"
	"github.com/dripvault/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line. Add and SetQuantity saturate at it.
const MaxQuantity = 999

// Line pairs a catalog product with a quantity between 1 and MaxQuantity.
// The product is shared with the catalog and never modified by the cart.
type Line struct {
	Product  *models.Product
	Quantity int
}

// Total is price-or-zero times quantity.
func (l Line) Total() decimal.Decimal {
	return l.Product.PriceOrZero().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per product id, in the order products were
// first added. The zero value is an empty cart.
//
// Cart is not safe for concurrent use; callers serialize access.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line in place, or appends a
// new line with quantity 1. Unpriced products are accepted. A line already
// at MaxQuantity stays there.
func (c *Cart) Add(p *models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Quantity = min(MaxQuantity, c.lines[i].Quantity+1)
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the line for id. Unknown ids are ignored.
func (c *Cart) Remove(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity clamps qty into [1, MaxQuantity] and sets it on the line. It
// never removes a line; unknown ids are ignored.
func (c *Cart) SetQuantity(id string, qty int) {
	if i := c.indexOf(id); i >= 0 {
		c.lines[i].Quantity = min(MaxQuantity, max(1, qty))
	}
}

// Lines returns a copy of the lines in cart order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) line(id string) (Line, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal sums every line total; missing prices count as zero.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// ItemCount is the sum of quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// CheckoutText renders one "<qty> x <name>[ @ <currency><price>]" row per
// line, followed by "Total: <currency><subtotal>" when the subtotal is
// positive. An empty cart renders as "".
func (c *Cart) CheckoutText(currency string) string {
	rows := make([]string, 0, len(c.lines)+1)
	for _, l := range c.lines {
		row := fmt.Sprintf("%d x %s", l.Quantity, l.Product.Name)
		if l.Product.HasPrice() {
			row += " @ " + currency + l.Product.Price.String()
		}
		rows = append(rows, row)
	}

	if subtotal := c.Subtotal(); subtotal.IsPositive() {
		rows = append(rows, "Total: "+currency+subtotal.StringFixed(2))
	}

	return strings.Join(rows, "\n")
}

// CheckoutSummary is CheckoutText encoded for a URL query parameter.
func (c *Cart) CheckoutSummary(currency string) string {
	return checkout.Encode(c.CheckoutText(currency))
}

func (c *Cart) indexOf(id string) int {
	for i, l := range c.lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}
