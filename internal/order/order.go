package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stepkick/go-storefront/internal/cart"
	"github.com/stepkick/go-storefront/internal/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIncompleteAddress = errors.New("incomplete shipping address")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotShipped        = errors.New("order has not shipped")
	ErrEmptyCart         = errors.New("cart is empty")
)

// Orders above this subtotal ship free; at or below it the flat fee applies.
var (
	freeShippingOver = decimal.NewFromInt(100)
	flatShippingFee  = decimal.RequireFromString("9.99")
)

// Engine owns the list of placed orders, most recent first. Orders are
// created exactly once and only their status and tracking code change
// afterwards; the item snapshots and total are immutable.
type Engine struct {
	mu     sync.Mutex
	orders []models.Order
	nextID int
}

// New seeds the engine with the fixed order history. Sequential ids continue
// from the seed.
func New(seed []models.Order) *Engine {
	orders := make([]models.Order, len(seed))
	for i, o := range seed {
		orders[i] = cloneOrder(o)
	}

	return &Engine{orders: orders, nextID: len(seed) + 1}
}

// cloneOrder copies the order together with its item snapshots, so the copy
// shares no backing array with the original.
func cloneOrder(o models.Order) models.Order {
	out := o
	out.Items = make([]models.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}

// ShippingFee is zero for subtotals strictly above the free-shipping
// threshold, the flat fee otherwise. A subtotal of exactly 100.00 still pays.
func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(freeShippingOver) {
		return decimal.Zero
	}
	return flatShippingFee
}

// PlaceOrder snapshots the cart lines into a new pending order. The recorded
// items copy each line's display fields and drop the cart-only id, so later
// cart or catalog mutations never reach a placed order. An empty line list is
// accepted here; guarding against it is the caller's concern (see Checkout).
func (e *Engine) PlaceOrder(userID string, lines []models.CartLine, subtotal decimal.Decimal, shipping models.ShippingInfo) (*models.Order, error) {
	if shipping.Name == "" || shipping.Address == "" || shipping.City == "" || shipping.Zip == "" {
		return nil, ErrIncompleteAddress
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Brand:     line.Brand,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
			Image:     line.Image,
		})
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	order := models.Order{
		ID:         fmt.Sprintf("ORD-%03d", e.nextID),
		UserID:     userID,
		PlacedDate: time.Now().Format("2006-01-02"),
		Status:     models.OrderStatusPending,
		Total:      subtotal.Add(ShippingFee(subtotal)),
		Items:      items,
		Shipping:   shipping,
	}
	e.nextID++

	e.orders = append([]models.Order{order}, e.orders...)

	out := cloneOrder(order)
	return &out, nil
}

// Checkout is the transactional unit of work for order placement: it
// snapshots the cart into a new order and empties the cart. If the cart
// cannot be cleared the order is unwound, so an order is never recorded
// alongside its un-cleared cart.
func (e *Engine) Checkout(ctx context.Context, userID string, c *cart.Engine, shipping models.ShippingInfo) (*models.Order, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// subtotal comes from the same snapshot as the items, so the recorded
	// total always agrees with them even if the cart changes underneath
	var subtotal decimal.Decimal
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order, err := e.PlaceOrder(userID, lines, subtotal, shipping)
	if err != nil {
		return nil, err
	}

	if err := c.ClearCart(ctx); err != nil {
		e.remove(order.ID)
		return nil, fmt.Errorf("clear cart after placing order: %w", err)
	}

	return order, nil
}

func (e *Engine) remove(orderID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		if e.orders[i].ID == orderID {
			e.orders = append(e.orders[:i], e.orders[i+1:]...)
			return
		}
	}
}

// transitions is the forward-only lifecycle graph. Cancelled is reachable
// from any non-terminal state; Delivered and Cancelled are terminal.
var transitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered:  {},
	models.OrderStatusCancelled:  {},
}

// UpdateOrderStatus moves the order along the lifecycle graph. Moves that
// skip ahead or go backwards are rejected.
func (e *Engine) UpdateOrderStatus(orderID, status string) error {
	if _, ok := transitions[status]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		if e.orders[i].ID != orderID {
			continue
		}

		current := e.orders[i].Status
		allowed := false
		for _, next := range transitions[current] {
			if next == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, status)
		}

		e.orders[i].Status = status
		return nil
	}

	return ErrOrderNotFound
}

// SetTracking records the carrier tracking code once the order has shipped.
func (e *Engine) SetTracking(orderID, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		if e.orders[i].ID != orderID {
			continue
		}

		status := e.orders[i].Status
		if status != models.OrderStatusShipped && status != models.OrderStatusDelivered {
			return ErrNotShipped
		}

		e.orders[i].Tracking = code
		return nil
	}

	return ErrOrderNotFound
}

func (e *Engine) Get(orderID string) (*models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		if e.orders[i].ID == orderID {
			o := cloneOrder(e.orders[i])
			return &o, nil
		}
	}

	return nil, ErrOrderNotFound
}

// Orders returns every placed order, most recent first.
func (e *Engine) Orders() []models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Order, len(e.orders))
	for i, o := range e.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// GetUserOrders filters by user, preserving most-recent-first order.
func (e *Engine) GetUserOrders(userID string) []models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Order
	for _, o := range e.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}
