package service

import "errors"

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrEmptyCart      = errors.New("cart is empty")
)

// Storefront carries the shop identity used in every outgoing message.
type Storefront struct {
	Name         string
	Currency     string
	MessagingURL string
}
