package models

import "github.com/shopspring/decimal"

// CartLineView is the JSON shape of one cart line.
type CartLineView struct {
	Product   ProductView     `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartView is the JSON shape of a session cart.
type CartView struct {
	Lines     []CartLineView  `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Display   string          `json:"subtotalDisplay"`
}

// Checkout is the result of handing a cart off to the messaging service.
type Checkout struct {
	Reference string          `json:"reference"`
	Text      string          `json:"text"`
	Summary   string          `json:"summary"`
	Link      string          `json:"link"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Inquiry is a pre-filled single-product message.
type Inquiry struct {
	ProductID string `json:"productId"`
	Text      string `json:"text"`
	Link      string `json:"link"`
}
