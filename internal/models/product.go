package models

import (
	"github.com/shopspring/decimal"
)

// PriceOnRequest is shown in place of a price for unpriced products.
const PriceOnRequest = "DM for Price"

// Product represents a clothing item in the storefront catalog.
// A nil Price means "price on request".
type Product struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Size      string           `json:"size"`
	Category  string           `json:"category"`
	Condition string           `json:"condition"`
	// Image is the legacy single-image field. It always equals Images[0]
	// once the catalog has been normalized.
	Image  string   `json:"image"`
	Images []string `json:"images"`
}

// Gallery returns the product images, falling back to the legacy field.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// PrimaryImage returns the first gallery image, or "" when there is none.
func (p Product) PrimaryImage() string {
	if g := p.Gallery(); len(g) > 0 {
		return g[0]
	}
	return ""
}

// HasPrice reports whether the product carries a price.
func (p Product) HasPrice() bool {
	return p.Price != nil
}

// PriceOrZero treats a missing price as zero.
func (p Product) PriceOrZero() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}

// DisplayPrice renders the price the way product cards show it.
func (p Product) DisplayPrice(currency string) string {
	if p.Price == nil {
		return PriceOnRequest
	}
	return currency + p.Price.StringFixed(2)
}

// ProductView is a product as the storefront renders it: the record plus the
// card price label and the primary image.
type ProductView struct {
	Product
	PriceLabel string `json:"priceDisplay"`
	MainImage  string `json:"primaryImage"`
}

// NewProductView renders p with the storefront currency.
func NewProductView(p Product, currency string) ProductView {
	return ProductView{
		Product:    p,
		PriceLabel: p.DisplayPrice(currency),
		MainImage:  p.PrimaryImage(),
	}
}

// Price is a small helper for building literal catalogs.
func Price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
