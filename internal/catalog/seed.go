package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/stepkick/go-storefront/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed returns the fixed launch catalog supplied at process start.
func Seed() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Air Max Pulse", Brand: "Nike", Category: "Running",
			Price: price("149.99"), OriginalPrice: price("169.99"), Stock: 24,
			Rating: price("4.6"), Reviews: 312,
			Images: []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200&q=80"},
			Colors: []string{"#f5f5f5", "#111111"},
			Sizes:  []string{"8", "9", "10", "11"},
			Tags:   []string{"new", "bestseller"}, Discount: 12,
		},
		{
			ID: 2, Name: "Ultraboost 23", Brand: "Adidas", Category: "Running",
			Price: price("189.99"), OriginalPrice: price("189.99"), Stock: 18,
			Rating: price("4.8"), Reviews: 521,
			Images: []string{"https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=200&q=80"},
			Colors: []string{"#111111", "#f5f5f5"},
			Sizes:  []string{"8", "9", "10", "11", "12"},
			Tags:   []string{"bestseller"},
		},
		{
			ID: 3, Name: "Jordan 1 Retro High OG", Brand: "Jordan", Category: "Basketball",
			Price: price("179.99"), OriginalPrice: price("179.99"), Stock: 9,
			Rating: price("4.9"), Reviews: 847,
			Images: []string{"https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=200&q=80"},
			Colors: []string{"#cc0000", "#111111"},
			Sizes:  []string{"9", "10", "11"},
			Tags:   []string{"limited"},
		},
		{
			ID: 4, Name: "Chuck Taylor All Star", Brand: "Converse", Category: "Lifestyle",
			Price: price("65.00"), OriginalPrice: price("65.00"), Stock: 42,
			Rating: price("4.4"), Reviews: 1203,
			Images: []string{"https://images.unsplash.com/photo-1463100099107-aa0980c362e6?w=200&q=80"},
			Colors: []string{"#f5f5f5", "#111111", "#cc0000"},
			Sizes:  []string{"7", "8", "9", "10", "11"},
		},
		{
			ID: 5, Name: "Old Skool Pro", Brand: "Vans", Category: "Skate",
			Price: price("74.99"), OriginalPrice: price("84.99"), Stock: 31,
			Rating: price("4.5"), Reviews: 689,
			Images: []string{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=200&q=80"},
			Colors: []string{"#111111"},
			Sizes:  []string{"8", "9", "10"},
			Tags:   []string{"bestseller"}, Discount: 12,
		},
		{
			ID: 6, Name: "990v6", Brand: "New Balance", Category: "Lifestyle",
			Price: price("199.99"), OriginalPrice: price("199.99"), Stock: 14,
			Rating: price("4.7"), Reviews: 256,
			Images: []string{"https://images.unsplash.com/photo-1539185441755-769473a23570?w=200&q=80"},
			Colors: []string{"#888888"},
			Sizes:  []string{"8", "9", "10", "11", "12"},
		},
		{
			ID: 7, Name: "Club C 85", Brand: "Reebok", Category: "Lifestyle",
			Price: price("90.00"), OriginalPrice: price("100.00"), Stock: 27,
			Rating: price("4.3"), Reviews: 431,
			Images:   []string{"https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=200&q=80"},
			Colors:   []string{"#f5f5f5"},
			Sizes:    []string{"7", "8", "9", "10"},
			Discount: 10,
		},
		{
			ID: 8, Name: "Gel-Kayano 30", Brand: "Asics", Category: "Running",
			Price: price("160.00"), OriginalPrice: price("160.00"), Stock: 20,
			Rating: price("4.6"), Reviews: 198,
			Images: []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200&q=80"},
			Colors: []string{"#111111", "#ff6600"},
			Sizes:  []string{"8", "9", "10", "11"},
		},
		{
			ID: 9, Name: "RS-X Efekt", Brand: "Puma", Category: "Lifestyle",
			Price: price("110.00"), OriginalPrice: price("120.00"), Stock: 16,
			Rating: price("4.2"), Reviews: 154,
			Images:   []string{"https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=200&q=80"},
			Colors:   []string{"#f5f5f5", "#ff6600"},
			Sizes:    []string{"8", "9", "10"},
			Discount: 8,
		},
		{
			ID: 10, Name: "Suede Classic XXI", Brand: "Puma", Category: "Skate",
			Price: price("75.00"), OriginalPrice: price("75.00"), Stock: 0,
			Rating: price("4.4"), Reviews: 522,
			Images: []string{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=200&q=80"},
			Colors: []string{"#cc0000", "#111111"},
			Sizes:  []string{"8", "9", "10", "11"},
			Tags:   []string{"sold-out"},
		},
		{
			ID: 11, Name: "Air Force 1 '07", Brand: "Nike", Category: "Lifestyle",
			Price: price("110.00"), OriginalPrice: price("110.00"), Stock: 38,
			Rating: price("4.8"), Reviews: 2094,
			Images: []string{"https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=200&q=80"},
			Colors: []string{"#f5f5f5"},
			Sizes:  []string{"7", "8", "9", "10", "11", "12"},
			Tags:   []string{"bestseller"},
		},
		{
			ID: 12, Name: "Clifton 9", Brand: "HOKA", Category: "Running",
			Price: price("145.00"), OriginalPrice: price("145.00"), Stock: 22,
			Rating: price("4.7"), Reviews: 367,
			Images: []string{"https://images.unsplash.com/photo-1539185441755-769473a23570?w=200&q=80"},
			Colors: []string{"#ff6600", "#111111"},
			Sizes:  []string{"9", "10", "11"},
			Tags:   []string{"new"},
		},
	}
}
