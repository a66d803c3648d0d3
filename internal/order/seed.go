package order

import (
	"github.com/shopspring/decimal"

	"github.com/stepkick/go-storefront/internal/models"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed returns the fixed order history supplied at process start.
func Seed() []models.Order {
	return []models.Order{
		{
			ID: "ORD-005", UserID: "usr-001", PlacedDate: "2024-02-18",
			Status: models.OrderStatusPending, Total: amount("110.00"),
			Items: []models.OrderItem{
				{ProductID: 11, Name: "Air Force 1 '07", Brand: "Nike", Price: amount("110.00"), Quantity: 1, Size: "10", Color: "#f5f5f5", Image: "https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=200&q=80"},
			},
			Shipping: models.ShippingInfo{Name: "Alex Johnson", Address: "123 Main St", City: "New York", State: "NY", Zip: "10001", Country: "US"},
		},
		{
			ID: "ORD-004", UserID: "usr-003", PlacedDate: "2024-02-14",
			Status: models.OrderStatusPending, Total: amount("145.00"),
			Items: []models.OrderItem{
				{ProductID: 12, Name: "Clifton 9", Brand: "HOKA", Price: amount("145.00"), Quantity: 1, Size: "11", Color: "#ff6600", Image: "https://images.unsplash.com/photo-1539185441755-769473a23570?w=200&q=80"},
			},
			Shipping: models.ShippingInfo{Name: "John Smith", Address: "789 Pine Rd", City: "Chicago", State: "IL", Zip: "60601", Country: "US"},
		},
		{
			ID: "ORD-003", UserID: "usr-002", PlacedDate: "2024-02-10",
			Status: models.OrderStatusProcessing, Total: amount("174.98"),
			Items: []models.OrderItem{
				{ProductID: 4, Name: "Chuck Taylor All Star", Brand: "Converse", Price: amount("65.00"), Quantity: 1, Size: "8", Color: "#f5f5f5", Image: "https://images.unsplash.com/photo-1463100099107-aa0980c362e6?w=200&q=80"},
				{ProductID: 5, Name: "Old Skool Pro", Brand: "Vans", Price: amount("74.99"), Quantity: 1, Size: "8", Color: "#111111", Image: "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=200&q=80"},
			},
			Shipping: models.ShippingInfo{Name: "Maria Garcia", Address: "456 Oak Ave", City: "Los Angeles", State: "CA", Zip: "90001", Country: "US"},
		},
		{
			ID: "ORD-002", UserID: "usr-001", PlacedDate: "2024-02-03",
			Status: models.OrderStatusShipped, Total: amount("189.99"),
			Items: []models.OrderItem{
				{ProductID: 2, Name: "Ultraboost 23", Brand: "Adidas", Price: amount("189.99"), Quantity: 1, Size: "9", Color: "#111111", Image: "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=200&q=80"},
			},
			Shipping: models.ShippingInfo{Name: "Alex Johnson", Address: "123 Main St", City: "New York", State: "NY", Zip: "10001", Country: "US"},
			Tracking: "TRK-9876543210",
		},
		{
			ID: "ORD-001", UserID: "usr-001", PlacedDate: "2024-01-15",
			Status: models.OrderStatusDelivered, Total: amount("329.98"),
			Items: []models.OrderItem{
				{ProductID: 1, Name: "Air Max Pulse", Brand: "Nike", Price: amount("149.99"), Quantity: 1, Size: "10", Color: "#f5f5f5", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200&q=80"},
				{ProductID: 3, Name: "Jordan 1 Retro High OG", Brand: "Jordan", Price: amount("179.99"), Quantity: 1, Size: "10", Color: "#cc0000", Image: "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=200&q=80"},
			},
			Shipping: models.ShippingInfo{Name: "Alex Johnson", Address: "123 Main St", City: "New York", State: "NY", Zip: "10001", Country: "US"},
			Tracking: "TRK-1234567890",
		},
	}
}
