package models

import (
	"github.com/shopspring/decimal"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	JoinDate string `json:"join_date"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Stock         int             `json:"stock"`
	Rating        decimal.Decimal `json:"rating"`
	Reviews       int             `json:"reviews"`
	Images        []string        `json:"images"`
	Colors        []string        `json:"colors"`
	Sizes         []string        `json:"sizes"`
	Tags          []string        `json:"tags,omitempty"`
	Discount      int             `json:"discount"`
}

// CartLine is one distinct product/size/color selection in the active cart.
// The display fields are snapshots taken at add time; later catalog edits do
// not reach back into an existing line.
type CartLine struct {
	CartID    string          `json:"cart_id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip"`
}

type Order struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	PlacedDate string          `json:"date"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Items      []OrderItem     `json:"items"`
	Shipping   ShippingInfo    `json:"shipping"`
	Tracking   string          `json:"tracking,omitempty"`
}

// OrderItem is the immutable snapshot of a cart line recorded at placement.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Image     string          `json:"image,omitempty"`
}

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)
