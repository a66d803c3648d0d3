package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepkick/go-storefront/internal/cart"
	"github.com/stepkick/go-storefront/internal/config"
	"github.com/stepkick/go-storefront/internal/models"
	"github.com/stepkick/go-storefront/internal/storage"
)

var testKeys = config.StorageKeys{
	Cart:     "stepkick-cart",
	Wishlist: "stepkick-wishlist",
	Session:  "stepkick-user",
}

func testProduct() *models.Product {
	return &models.Product{
		ID:     1,
		Name:   "Air Max Pulse",
		Brand:  "Nike",
		Price:  decimal.RequireFromString("100.00"),
		Stock:  10,
		Images: []string{"https://example.com/airmax.jpg"},
		Colors: []string{"black", "white"},
		Sizes:  []string{"9", "10"},
	}
}

func newEngine(t *testing.T) (*cart.Engine, *storage.Memory) {
	t.Helper()

	store := storage.NewMemory()
	return cart.New(context.Background(), store, testKeys), store
}

func TestAddMergesSameSelection(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 1))
	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 1))

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, engine.Count())
}

func TestAddDistinctSelectionsCreateLines(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 1))
	require.NoError(t, engine.AddToCart(ctx, product, "9", "black", 1))
	require.NoError(t, engine.AddToCart(ctx, product, "10", "white", 1))

	lines := engine.Lines()
	assert.Len(t, lines, 3)

	ids := map[string]bool{}
	for _, line := range lines {
		ids[line.CartID] = true
	}
	assert.Len(t, ids, 3)
}

func TestAddRejectsUnknownSizeOrColor(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	assert.ErrorIs(t, engine.AddToCart(ctx, product, "13", "black", 1), cart.ErrInvalidSelection)
	assert.ErrorIs(t, engine.AddToCart(ctx, product, "10", "green", 1), cart.ErrInvalidSelection)
	assert.Empty(t, engine.Lines())
}

func TestAddRejectsQuantityBeyondStock(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	assert.ErrorIs(t, engine.AddToCart(ctx, product, "10", "black", 11), cart.ErrInsufficientStock)

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 8))
	assert.ErrorIs(t, engine.AddToCart(ctx, product, "10", "black", 3), cart.ErrInsufficientStock)
	assert.Equal(t, 8, engine.Count())
}

func TestTotalUsesSnapshottedPrice(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 2))

	// a later catalog price edit must not move the cart total
	product.Price = decimal.RequireFromString("150.00")

	assert.True(t, engine.Total().Equal(decimal.RequireFromString("200.00")),
		"total = %s", engine.Total())
}

func TestUpdateQuantityFloorRemovesLine(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 2))
	cartID := engine.Lines()[0].CartID

	require.NoError(t, engine.UpdateQuantity(ctx, cartID, 5))
	assert.Equal(t, 5, engine.Lines()[0].Quantity)

	require.NoError(t, engine.UpdateQuantity(ctx, cartID, 0))
	assert.Empty(t, engine.Lines())

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 2))
	cartID = engine.Lines()[0].CartID
	require.NoError(t, engine.UpdateQuantity(ctx, cartID, -3))
	assert.Empty(t, engine.Lines())
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 1))
	require.NoError(t, engine.RemoveFromCart(ctx, "no-such-line"))
	assert.Len(t, engine.Lines(), 1)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 3))
	require.NoError(t, engine.ClearCart(ctx))

	assert.Equal(t, 0, engine.Count())
	assert.True(t, engine.Total().IsZero())
}

func TestWishlistTogglePairRestoresState(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t)

	require.NoError(t, engine.ToggleWishlist(ctx, 7))
	assert.True(t, engine.InWishlist(7))

	require.NoError(t, engine.ToggleWishlist(ctx, 7))
	assert.False(t, engine.InWishlist(7))
	assert.Empty(t, engine.Wishlist())
}

func TestStatePersistsAcrossEngines(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	engine := cart.New(ctx, store, testKeys)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 2))
	require.NoError(t, engine.ToggleWishlist(ctx, 5))

	reloaded := cart.New(ctx, store, testKeys)
	assert.Equal(t, 2, reloaded.Count())
	assert.True(t, reloaded.InWishlist(5))
	assert.Equal(t, engine.Lines(), reloaded.Lines())
}

// failingStore breaks writes on demand to exercise persist-failure rollback.
type failingStore struct {
	*storage.Memory
	failSet bool
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Memory.Set(ctx, key, value)
}

func TestMutationsRollBackWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Memory: storage.NewMemory()}
	engine := cart.New(ctx, store, testKeys)
	product := testProduct()

	require.NoError(t, engine.AddToCart(ctx, product, "10", "black", 2))
	require.NoError(t, engine.ToggleWishlist(ctx, 7))
	cartID := engine.Lines()[0].CartID

	store.failSet = true

	// every failed write leaves memory exactly as it was
	assert.Error(t, engine.AddToCart(ctx, product, "10", "black", 1))
	assert.Equal(t, 2, engine.Count())

	assert.Error(t, engine.AddToCart(ctx, product, "9", "white", 1))
	assert.Len(t, engine.Lines(), 1)

	assert.Error(t, engine.UpdateQuantity(ctx, cartID, 5))
	assert.Equal(t, 2, engine.Lines()[0].Quantity)

	assert.Error(t, engine.RemoveFromCart(ctx, cartID))
	assert.Len(t, engine.Lines(), 1)

	assert.Error(t, engine.ClearCart(ctx))
	assert.Equal(t, 2, engine.Count())

	assert.Error(t, engine.ToggleWishlist(ctx, 7))
	assert.True(t, engine.InWishlist(7))

	store.failSet = false

	// memory and storage still agree after recovery
	require.NoError(t, engine.ClearCart(ctx))
	reloaded := cart.New(ctx, store, testKeys)
	assert.Equal(t, 0, reloaded.Count())
	assert.True(t, reloaded.InWishlist(7))
}

func TestCorruptStoredStateDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, testKeys.Cart, []byte("{not json")))
	require.NoError(t, store.Set(ctx, testKeys.Wishlist, []byte("oops")))

	engine := cart.New(ctx, store, testKeys)
	assert.Empty(t, engine.Lines())
	assert.Empty(t, engine.Wishlist())
}
