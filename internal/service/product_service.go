package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dripvault/storefront/internal/checkout"
	"github.com/dripvault/storefront/internal/models"
	"github.com/dripvault/storefront/internal/query"
	"github.com/dripvault/storefront/internal/repository"
)

// Filters describes the selectable values for each criterion.
type Filters struct {
	Categories []string     `json:"categories"`
	Sizes      []string     `json:"sizes"`
	Sorts      []query.Sort `json:"sorts"`
}

// ProductService handles business logic for products
type ProductService struct {
	repo       repository.ProductRepository
	storefront Storefront
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository, storefront Storefront) *ProductService {
	return &ProductService{
		repo:       repo,
		storefront: storefront,
	}
}

// View renders a product with the storefront currency.
func (s *ProductService) View(p models.Product) models.ProductView {
	return models.NewProductView(p, s.storefront.Currency)
}

// Views renders a selection in order.
func (s *ProductService) Views(products []models.Product) []models.ProductView {
	out := make([]models.ProductView, len(products))
	for i, p := range products {
		out[i] = s.View(p)
	}
	return out
}

// ListProducts returns the catalog narrowed and ordered by the criteria
func (s *ProductService) ListProducts(ctx context.Context, c query.Criteria) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return query.Select(products, c), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Inquiry builds the "is it still available?" message for one product.
func (s *ProductService) Inquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	text := checkout.InquiryText(s.storefront.Name, *product)
	return &models.Inquiry{
		ProductID: product.ID,
		Text:      text,
		Link:      checkout.Link(s.storefront.MessagingURL, text),
	}, nil
}

// Filters returns the closed category and size sets and the sort modes.
func (s *ProductService) Filters() Filters {
	return Filters{
		Categories: slices.Clone(repository.Categories),
		Sizes:      slices.Clone(repository.Sizes),
		Sorts:      slices.Clone(query.SortModes),
	}
}

// ParseCriteria builds criteria from raw request values. Empty values and
// "all" select the defaults.
func (s *ProductService) ParseCriteria(q, category, size, sort string) (query.Criteria, error) {
	mode, err := query.ParseSort(strings.TrimSpace(sort))
	if err != nil {
		return query.Criteria{}, err
	}

	c := query.Criteria{
		Query:    q,
		Category: query.NormalizeSelection(strings.TrimSpace(category)),
		Size:     query.NormalizeSelection(strings.TrimSpace(size)),
		Sort:     mode,
	}
	if err := ValidateCriteria(c); err != nil {
		return query.Criteria{}, err
	}
	return c, nil
}

// ValidateCriteria checks criteria against the catalog's closed sets.
func ValidateCriteria(c query.Criteria) error {
	return c.Validate(repository.Categories, repository.Sizes)
}
