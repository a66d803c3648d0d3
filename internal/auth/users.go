package auth

import (
	"github.com/stepkick/go-storefront/internal/models"
)

// MockUsers is the fixed credential list supplied at process start.
func MockUsers() []models.User {
	return []models.User{
		{
			ID:       "usr-001",
			Name:     "Alex Johnson",
			Email:    "alex@example.com",
			Password: "password123",
			Role:     models.RoleUser,
			Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex",
			Phone:    "+1 (555) 123-4567",
			Address:  "123 Main St, New York, NY 10001",
			JoinDate: "2023-03-15",
		},
		{
			ID:       "adm-001",
			Name:     "Admin Sarah",
			Email:    "admin@stepkick.com",
			Password: "admin123",
			Role:     models.RoleAdmin,
			Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			Phone:    "+1 (555) 999-0001",
			Address:  "456 Admin Ave, San Francisco, CA 94105",
			JoinDate: "2022-01-01",
		},
	}
}
