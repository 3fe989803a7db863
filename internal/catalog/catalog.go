package catalog

import (
	"github.com/shopspring/decimal"

	"estore/internal/domain"
)

// The catalog is a fixed, externally curated collection. Products are
// immutable here; admin tooling that edits them lives outside this app.

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var seedCategories = []domain.Category{
	{ID: "cat-electronics", Name: "Electronics", Slug: "electronics"},
	{ID: "cat-clothing", Name: "Clothing", Slug: "clothing"},
	{ID: "cat-sports", Name: "Sports", Slug: "sports"},
	{ID: "cat-home-kitchen", Name: "Home & Kitchen", Slug: "home-kitchen"},
	{ID: "cat-accessories", Name: "Accessories", Slug: "accessories"},
}

var seedProducts = []domain.Product{
	{
		ID:          "hdph-001",
		Name:        "Wireless Bluetooth Headphones",
		Price:       price("79.99"),
		Category:    "Electronics",
		Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Premium wireless headphones with noise cancellation and long battery life.",
		Stock:       50,
		Rating:      4.5,
		Reviews:     128,
	},
	{
		ID:          "watch-001",
		Name:        "Smart Watch Series 5",
		Price:       price("299.99"),
		Category:    "Electronics",
		Image:       "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Advanced smartwatch with health monitoring and GPS tracking.",
		Stock:       30,
		Rating:      4.7,
		Reviews:     89,
	},
	{
		ID:          "tshirt-001",
		Name:        "Organic Cotton T-Shirt",
		Price:       price("24.99"),
		Category:    "Clothing",
		Image:       "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Comfortable and sustainable organic cotton t-shirt.",
		Stock:       100,
		Rating:      4.3,
		Reviews:     67,
	},
	{
		ID:          "cam-001",
		Name:        "Professional Camera",
		Price:       price("899.99"),
		Category:    "Electronics",
		Image:       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "High-quality digital camera for professional photography.",
		Stock:       15,
		Rating:      4.8,
		Reviews:     45,
	},
	{
		ID:          "shoes-001",
		Name:        "Running Shoes",
		Price:       price("129.99"),
		Category:    "Sports",
		Image:       "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Lightweight running shoes with superior comfort and support.",
		Stock:       75,
		Rating:      4.6,
		Reviews:     156,
	},
	{
		ID:          "coffee-001",
		Name:        "Coffee Maker",
		Price:       price("149.99"),
		Category:    "Home & Kitchen",
		Image:       "https://images.pexels.com/photos/4226796/pexels-photo-4226796.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Programmable coffee maker with multiple brewing options.",
		Stock:       40,
		Rating:      4.4,
		Reviews:     92,
	},
	{
		ID:          "yoga-001",
		Name:        "Yoga Mat",
		Price:       price("39.99"),
		Category:    "Sports",
		Image:       "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Non-slip yoga mat for all your fitness needs.",
		Stock:       80,
		Rating:      4.2,
		Reviews:     73,
	},
	{
		ID:          "pack-001",
		Name:        "Leather Backpack",
		Price:       price("89.99"),
		Category:    "Accessories",
		Image:       "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=500",
		Description: "Stylish leather backpack perfect for work or travel.",
		Stock:       25,
		Rating:      4.5,
		Reviews:     38,
	},
}

// Products returns a copy of the seed catalog in its canonical order.
func Products() []domain.Product {
	out := make([]domain.Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}

// Categories returns the fixed category vocabulary.
func Categories() []domain.Category {
	out := make([]domain.Category, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// Availability classifies raw stock the same way the storefront badges it.
func Availability(p domain.Product) domain.Availability {
	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: p.Stock}
}
