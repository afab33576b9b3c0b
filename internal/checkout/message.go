// Package checkout builds the pre-filled messages and deep links that stand
// in for a real checkout flow.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dripvault/storefront/internal/models"
)

// Encode escapes text for use as a URL query value. Spaces become %20 so
// the message reads the same in chat clients that do not decode '+'.
func Encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Link appends text as the "text" parameter of the messaging base URL.
func Link(base, text string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "text=" + Encode(text)
}

// OrderMessage puts the storefront greeting in front of a cart summary.
func OrderMessage(storefront, cartText string) string {
	greeting := fmt.Sprintf("Hi %s, I'd like to order:", storefront)
	if cartText == "" {
		return greeting
	}
	return greeting + "\n" + cartText
}

// InquiryText asks whether a single product is still available.
func InquiryText(storefront string, p models.Product) string {
	return fmt.Sprintf("Hi %s, I'm interested in: %s (ID: %s). Is it still available?", storefront, p.Name, p.ID)
}
