package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stepkick/go-storefront/internal/config"
	"github.com/stepkick/go-storefront/internal/models"
	"github.com/stepkick/go-storefront/internal/storage"
)

var (
	ErrInvalidSelection  = errors.New("size or color not offered for product")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Engine owns the active cart lines and the wishlist. Every mutation is
// written through to the key-value store; state is reloaded from it on
// construction, falling back to empty when the stored data is missing or
// corrupt.
type Engine struct {
	mu       sync.Mutex
	store    storage.Store
	keys     config.StorageKeys
	lines    []models.CartLine
	wishlist []int64
}

func New(ctx context.Context, store storage.Store, keys config.StorageKeys) *Engine {
	e := &Engine{store: store, keys: keys}

	if data, err := store.Get(ctx, keys.Cart); err == nil {
		var lines []models.CartLine
		if err := json.Unmarshal(data, &lines); err == nil {
			e.lines = lines
		}
	}

	if data, err := store.Get(ctx, keys.Wishlist); err == nil {
		var wishlist []int64
		if err := json.Unmarshal(data, &wishlist); err == nil {
			e.wishlist = wishlist
		}
	}

	return e
}

func newCartID(productID int64, size, color string) string {
	return fmt.Sprintf("%d-%s-%s-%d", productID, size, color, time.Now().UnixNano())
}

// AddToCart merges the selection into an existing line for the same
// (product, size, color) or appends a new line. The requested size and color
// must be offered by the product, and the merged quantity must stay within
// its stock.
func (e *Engine) AddToCart(ctx context.Context, product *models.Product, size, color string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	if !slices.Contains(product.Sizes, size) || !slices.Contains(product.Colors, color) {
		return ErrInvalidSelection
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := slices.Clone(e.lines)

	for i := range e.lines {
		line := &e.lines[i]
		if line.ProductID == product.ID && line.Size == size && line.Color == color {
			if line.Quantity+quantity > product.Stock {
				return ErrInsufficientStock
			}
			line.Quantity += quantity
			return e.commitCart(ctx, prev)
		}
	}

	if quantity > product.Stock {
		return ErrInsufficientStock
	}

	var image string
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	e.lines = append(e.lines, models.CartLine{
		CartID:    newCartID(product.ID, size, color),
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Image:     image,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})

	return e.commitCart(ctx, prev)
}

// RemoveFromCart deletes the line with the given id. An unknown id is a no-op.
func (e *Engine) RemoveFromCart(ctx context.Context, cartID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.removeLine(ctx, cartID)
}

func (e *Engine) removeLine(ctx context.Context, cartID string) error {
	for i := range e.lines {
		if e.lines[i].CartID == cartID {
			prev := slices.Clone(e.lines)
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return e.commitCart(ctx, prev)
		}
	}
	return nil
}

// UpdateQuantity replaces the line's quantity; zero or negative removes the
// line entirely, so no line ever carries a quantity below 1.
func (e *Engine) UpdateQuantity(ctx context.Context, cartID string, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		return e.removeLine(ctx, cartID)
	}

	for i := range e.lines {
		if e.lines[i].CartID == cartID {
			prev := slices.Clone(e.lines)
			e.lines[i].Quantity = quantity
			return e.commitCart(ctx, prev)
		}
	}
	return nil
}

// ClearCart empties all lines. If the emptied cart cannot be persisted the
// previous lines are kept, so a failed clear leaves the cart intact.
func (e *Engine) ClearCart(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.lines
	e.lines = nil
	return e.commitCart(ctx, prev)
}

// ToggleWishlist flips the product's wishlist membership.
func (e *Engine) ToggleWishlist(ctx context.Context, productID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := slices.Clone(e.wishlist)

	if i := slices.Index(e.wishlist, productID); i >= 0 {
		e.wishlist = append(e.wishlist[:i], e.wishlist[i+1:]...)
	} else {
		e.wishlist = append(e.wishlist, productID)
	}

	if err := e.persistWishlist(ctx); err != nil {
		e.wishlist = prev
		return err
	}
	return nil
}

func (e *Engine) InWishlist(productID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Contains(e.wishlist, productID)
}

func (e *Engine) Wishlist() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]int64, len(e.wishlist))
	copy(out, e.wishlist)
	return out
}

func (e *Engine) Lines() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Count is the sum of all line quantities, recomputed on every call.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// Total sums price times quantity over all lines using each line's
// snapshotted price, so a later catalog price edit never moves an existing
// cart's total.
func (e *Engine) Total() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total decimal.Decimal
	for _, line := range e.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// commitCart persists the current lines, restoring prev on failure so memory
// and storage never disagree after a failed write.
func (e *Engine) commitCart(ctx context.Context, prev []models.CartLine) error {
	if err := e.persistCart(ctx); err != nil {
		e.lines = prev
		return err
	}
	return nil
}

func (e *Engine) persistCart(ctx context.Context) error {
	data, err := json.Marshal(e.lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := e.store.Set(ctx, e.keys.Cart, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func (e *Engine) persistWishlist(ctx context.Context) error {
	data, err := json.Marshal(e.wishlist)
	if err != nil {
		return fmt.Errorf("encode wishlist: %w", err)
	}
	if err := e.store.Set(ctx, e.keys.Wishlist, data); err != nil {
		return fmt.Errorf("persist wishlist: %w", err)
	}
	return nil
}
