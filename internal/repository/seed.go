package repository

import "github.com/dripvault/storefront/internal/models"

// SeedProducts is the built-in DripVault catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "dv-001", Name: "Barcelona 25/26 Home Shirt", Price: models.Price(65), Size: "M", Category: "Football Shirts", Condition: "New with tags",
			Image: "/images/barcelona_jersey.jpg", Images: []string{"/images/barcelona_jersey.jpg", "/images/barcelona_jersey_2.jpg"}},
		{ID: "dv-002", Name: "Milan 24/25 Home Shirt", Price: models.Price(65), Size: "M", Category: "Football Shirts", Condition: "New with tags",
			Image: "/images/milan_jersey.jpg", Images: []string{"/images/milan_jersey.jpg", "/images/milan_jersey_2.jpg"}},
		{ID: "dv-003", Name: "Corteiz France Tee Black", Price: models.Price(75), Size: "S", Category: "Designer Clothing", Condition: "New with tags",
			Image: "/images/corteiz_france_tee.jpg", Images: []string{"/images/corteiz_france_tee.jpg", "/images/corteiz_france_tee_2.jpg"}},
		{ID: "dv-004", Name: "Corteiz OG Island Tee Black", Size: "M", Category: "Designer Clothing", Condition: "Brand New",
			Image: "/images/corteiz_og_tee.jpg", Images: []string{"/images/corteiz_og_tee.jpg", "/images/corteiz_og_tee_2.jpg"}},
		{ID: "dv-005", Name: "Trapstar Tee", Size: "M", Category: "Designer Clothing", Condition: "Used, Like New",
			Image: "/images/trapstar_tee.jpg", Images: []string{"/images/trapstar_tee.jpg", "/images/trapstar_tee_2.jpg"}},
		{ID: "dv-006", Name: "Black Yeezy Slides", Size: "44", Category: "Footwear", Condition: "Brand New",
			Image: "/images/yeezy_slides.jpg", Images: []string{"/images/yeezy_slides.jpg", "/images/yeezy_slides_2.jpg"}},
		{ID: "dv-007", Name: "New Product 1", Price: models.Price(80), Size: "L", Category: "Designer Clothing", Condition: "New with tags",
			Image: "/images/new_product_1.jpg", Images: []string{"/images/new_product_1.jpg", "/images/new_product_1_2.jpg"}},
		{ID: "dv-008", Name: "New Product 2", Price: models.Price(90), Size: "XL", Category: "Football Shirts", Condition: "Used, Like New",
			Image: "/images/new_product_2.jpg", Images: []string{"/images/new_product_2.jpg", "/images/new_product_2_2.jpg"}},
	}
}
