package main

import (
	"context"
	"log"

	"github.com/stepkick/go-storefront/internal/auth"
	"github.com/stepkick/go-storefront/internal/cart"
	"github.com/stepkick/go-storefront/internal/catalog"
	"github.com/stepkick/go-storefront/internal/config"
	"github.com/stepkick/go-storefront/internal/models"
	"github.com/stepkick/go-storefront/internal/order"
	"github.com/stepkick/go-storefront/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	store, err := storage.NewSQLite(&cfg.Store)
	if err != nil {
		log.Fatalf("Open store: %v", err)
	}
	defer store.Close()

	log.Printf("Opened store at %s", cfg.Store.Path)

	ctx := context.Background()

	products := catalog.New(catalog.Seed())
	basket := cart.New(ctx, store, cfg.Keys)
	orders := order.New(order.Seed())
	session := auth.New(ctx, store, cfg.Auth, cfg.Keys)

	user := session.Current()
	if user == nil {
		user, err = session.Login(ctx, "alex@example.com", "password123")
		if err != nil {
			log.Fatalf("Login: %v", err)
		}
	}
	log.Printf("Signed in as %s (%s)", user.Name, user.Role)

	for _, p := range products.List()[:3] {
		log.Printf("Catalog: %s %s $%s", p.Brand, p.Name, p.Price)
	}

	airMax, err := products.Get(1)
	if err != nil {
		log.Fatalf("Get product: %v", err)
	}
	if err := basket.AddToCart(ctx, airMax, "10", "#f5f5f5", 2); err != nil {
		log.Fatalf("Add to cart: %v", err)
	}

	clifton, err := products.Get(12)
	if err != nil {
		log.Fatalf("Get product: %v", err)
	}
	if err := basket.AddToCart(ctx, clifton, "10", "#ff6600", 1); err != nil {
		log.Fatalf("Add to cart: %v", err)
	}
	if err := basket.ToggleWishlist(ctx, clifton.ID); err != nil {
		log.Fatalf("Toggle wishlist: %v", err)
	}

	log.Printf("Cart: %d items, subtotal $%s, shipping $%s",
		basket.Count(), basket.Total(), order.ShippingFee(basket.Total()))

	placed, err := orders.Checkout(ctx, user.ID, basket, models.ShippingInfo{
		Name:    user.Name,
		Address: "123 Main St",
		City:    "New York",
		State:   "NY",
		Zip:     "10001",
		Country: "US",
	})
	if err != nil {
		log.Fatalf("Checkout: %v", err)
	}
	log.Printf("Placed %s: total $%s, cart now holds %d items", placed.ID, placed.Total, basket.Count())

	for _, o := range orders.GetUserOrders(user.ID) {
		log.Printf("Order %s [%s] $%s", o.ID, o.Status, o.Total)
	}
}
