package repository

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dripvault/storefront/internal/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Price     *float64 `yaml:"price"`
	Size      string   `yaml:"size"`
	Category  string   `yaml:"category"`
	Condition string   `yaml:"condition"`
	Image     string   `yaml:"image"`
	Images    []string `yaml:"images"`
}

// LoadFile reads a YAML catalog and builds a validated repository from it.
func LoadFile(path string) (*InMemoryProductRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	products, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return NewInMemoryProductRepository(products)
}

// DecodeCatalog parses YAML catalog records. A missing or null price means
// price on request. Unknown keys are rejected.
func DecodeCatalog(r io.Reader) ([]models.Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]models.Product, 0, len(file.Products))
	for _, rec := range file.Products {
		p := models.Product{
			ID:        rec.ID,
			Name:      rec.Name,
			Size:      rec.Size,
			Category:  rec.Category,
			Condition: rec.Condition,
			Image:     rec.Image,
			Images:    rec.Images,
		}
		if rec.Price != nil {
			price := decimal.NewFromFloat(*rec.Price)
			p.Price = &price
		}
		products = append(products, p)
	}
	return products, nil
}
