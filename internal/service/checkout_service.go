package service

import (
	"github.com/dripvault/storefront/internal/checkout"
	"github.com/dripvault/storefront/internal/models"
	"github.com/dripvault/storefront/internal/session"
	"github.com/dripvault/storefront/pkg/metrics"
	"github.com/google/uuid"
)

// CheckoutService turns a session cart into a messaging handoff
type CheckoutService struct {
	sessions   *session.Store
	storefront Storefront
	metrics    *metrics.Storefront
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(sessions *session.Store, storefront Storefront, m *metrics.Storefront) *CheckoutService {
	return &CheckoutService{
		sessions:   sessions,
		storefront: storefront,
		metrics:    m,
	}
}

// Checkout builds the order message and deep link for the session cart.
// The cart is left as it is: nothing confirms the message was ever sent.
func (s *CheckoutService) Checkout(sessionID string) (*models.Checkout, error) {
	var out models.Checkout
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if sess.Cart.IsEmpty() {
			return ErrEmptyCart
		}

		text := sess.Cart.CheckoutText(s.storefront.Currency)
		out = models.Checkout{
			Reference: generateReference(),
			Text:      text,
			Summary:   sess.Cart.CheckoutSummary(s.storefront.Currency),
			Link:      checkout.Link(s.storefront.MessagingURL, checkout.OrderMessage(s.storefront.Name, text)),
			ItemCount: sess.Cart.ItemCount(),
			Subtotal:  sess.Cart.Subtotal(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncCheckout()
	return &out, nil
}

// generateReference generates a unique checkout reference using UUID
func generateReference() string {
	return uuid.New().String()
}
