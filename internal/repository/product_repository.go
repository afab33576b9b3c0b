package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dripvault/storefront/internal/models"
	"go.uber.org/multierr"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// Closed sets every catalog product must draw from, in display order.
var (
	Categories = []string{"Football Shirts", "Designer Clothing", "Footwear"}
	Sizes      = []string{"S", "M", "L", "XL", "44"}
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository is the immutable catalog store. Insertion order
// is kept because "featured" ordering is the catalog order.
type InMemoryProductRepository struct {
	products []models.Product
	index    map[string]int
}

// NewInMemoryProductRepository validates and indexes the given catalog.
// Every invariant violation is reported, not just the first.
func NewInMemoryProductRepository(products []models.Product) (*InMemoryProductRepository, error) {
	if err := Validate(products); err != nil {
		return nil, err
	}

	normalized := make([]models.Product, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		normalized[i] = normalize(p)
		index[p.ID] = i
	}

	return &InMemoryProductRepository{
		products: normalized,
		index:    index,
	}, nil
}

// NewSeededProductRepository returns the built-in catalog.
func NewSeededProductRepository() *InMemoryProductRepository {
	repo, err := NewInMemoryProductRepository(SeedProducts())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return repo
}

// GetAll returns all products in catalog order. The slice is a copy.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return slices.Clone(r.products), nil
}

// GetByID returns the catalog's own record for id. Every caller shares it,
// so it must be treated as read-only.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &r.products[i], nil
}

// Len is the number of products in the catalog.
func (r *InMemoryProductRepository) Len() int {
	return len(r.products)
}

// Validate checks the catalog invariants: unique ids, at least one image,
// legacy image agreeing with the gallery, positive prices and closed-set
// categories and sizes.
func Validate(products []models.Product) error {
	var errs error
	seen := make(map[string]int, len(products))

	for i, p := range products {
		switch {
		case p.ID == "":
			errs = multierr.Append(errs, fmt.Errorf("product #%d: empty id", i))
		default:
			if first, dup := seen[p.ID]; dup {
				errs = multierr.Append(errs, fmt.Errorf("product %q: duplicate id (first at #%d, again at #%d)", p.ID, first, i))
			} else {
				seen[p.ID] = i
			}
		}

		if len(p.Gallery()) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("product %q: no image", p.ID))
		}
		for j, img := range p.Images {
			if img == "" {
				errs = multierr.Append(errs, fmt.Errorf("product %q: empty image at #%d", p.ID, j))
			}
		}
		if p.Image != "" && len(p.Images) > 0 && p.Images[0] != p.Image {
			errs = multierr.Append(errs, fmt.Errorf("product %q: legacy image %q is not the primary gallery image %q", p.ID, p.Image, p.Images[0]))
		}

		if p.Price != nil && !p.Price.IsPositive() {
			errs = multierr.Append(errs, fmt.Errorf("product %q: price must be positive, got %s", p.ID, p.Price))
		}

		if !slices.Contains(Categories, p.Category) {
			errs = multierr.Append(errs, fmt.Errorf("product %q: unknown category %q", p.ID, p.Category))
		}
		if !slices.Contains(Sizes, p.Size) {
			errs = multierr.Append(errs, fmt.Errorf("product %q: unknown size %q", p.ID, p.Size))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errs)
	}
	return nil
}

// normalize resolves the legacy image field and the gallery to each other.
func normalize(p models.Product) models.Product {
	p.Images = slices.Clone(p.Gallery())
	p.Image = p.Images[0]
	return p
}
