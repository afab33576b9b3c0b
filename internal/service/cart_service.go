package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dripvault/storefront/internal/cart"
	"github.com/dripvault/storefront/internal/models"
	"github.com/dripvault/storefront/internal/query"
	"github.com/dripvault/storefront/internal/repository"
	"github.com/dripvault/storefront/internal/session"
	"github.com/dripvault/storefront/pkg/metrics"
)

// CartService applies shopper actions to the session-owned cart and criteria.
type CartService struct {
	sessions *session.Store
	repo     repository.ProductRepository
	currency string
	metrics  *metrics.Storefront
}

// NewCartService creates a new cart service
func NewCartService(sessions *session.Store, repo repository.ProductRepository, currency string, m *metrics.Storefront) *CartService {
	return &CartService{
		sessions: sessions,
		repo:     repo,
		currency: currency,
		metrics:  m,
	}
}

// Cart returns the current cart of the session.
func (s *CartService) Cart(sessionID string) (*models.CartView, error) {
	var view models.CartView
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		view = CartView(sess.Cart, s.currency)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// AddItem adds one unit of a catalog product, merging with an existing line.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) (*models.CartView, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, productID)
		}
		return nil, err
	}

	return s.mutate(sessionID, "add", func(c *cart.Cart) {
		c.Add(product)
	})
}

// RemoveItem drops the line for productID. Missing lines are not an error.
func (s *CartService) RemoveItem(sessionID, productID string) (*models.CartView, error) {
	return s.mutate(sessionID, "remove", func(c *cart.Cart) {
		c.Remove(productID)
	})
}

// SetQuantity sets a line quantity, clamped to at least 1.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) (*models.CartView, error) {
	return s.mutate(sessionID, "set_quantity", func(c *cart.Cart) {
		c.SetQuantity(productID, qty)
	})
}

// Criteria returns the session's current filter selection.
func (s *CartService) Criteria(sessionID string) (query.Criteria, error) {
	var c query.Criteria
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		c = sess.Criteria
		return nil
	})
	return c, err
}

// SetCriteria replaces the session's criteria after validating them.
func (s *CartService) SetCriteria(sessionID string, c query.Criteria) (query.Criteria, error) {
	if err := ValidateCriteria(c); err != nil {
		return query.Criteria{}, err
	}
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.Criteria = c
		return nil
	})
	return c, err
}

// ResetCriteria restores the session's criteria to the defaults.
func (s *CartService) ResetCriteria(sessionID string) (query.Criteria, error) {
	var c query.Criteria
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.Criteria.Reset()
		c = sess.Criteria
		return nil
	})
	return c, err
}

// EndSession discards the session with its cart and criteria. Unknown ids
// are ignored.
func (s *CartService) EndSession(sessionID string) {
	s.sessions.Delete(sessionID)
}

// Browse selects the catalog with the session's criteria.
func (s *CartService) Browse(ctx context.Context, sessionID string) ([]models.Product, query.Criteria, error) {
	c, err := s.Criteria(sessionID)
	if err != nil {
		return nil, query.Criteria{}, err
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, query.Criteria{}, fmt.Errorf("browse: %w", err)
	}
	return query.Select(products, c), c, nil
}

func (s *CartService) mutate(sessionID, op string, fn func(*cart.Cart)) (*models.CartView, error) {
	var view models.CartView
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		fn(sess.Cart)
		view = CartView(sess.Cart, s.currency)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncCartOp(op)
	return &view, nil
}

// CartView converts a cart into its JSON representation.
func CartView(c *cart.Cart, currency string) models.CartView {
	lines := c.Lines()
	view := models.CartView{
		Lines:     make([]models.CartLineView, 0, len(lines)),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, models.CartLineView{
			Product:   models.NewProductView(*l.Product, currency),
			Quantity:  l.Quantity,
			LineTotal: l.Total(),
		})
	}
	view.Display = currency + view.Subtotal.StringFixed(2)
	return view
}
