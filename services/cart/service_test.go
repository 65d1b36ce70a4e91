package cart

import (
	"context"
	"testing"

	"sohoconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService() *DefaultCartService {
	return &DefaultCartService{
		Store: NewMemoryStore(),
		Rules: testPricing,
	}
}

func testProduct(slug string, price float64, stock int) models.Product {
	return models.Product{
		ID:         slug,
		Slug:       slug,
		Name:       slug,
		Price:      price,
		Currency:   "USD",
		InStock:    stock > 0,
		StockCount: stock,
	}
}

func TestAddItemNewLine(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	updated, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))

	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1, updated.Items[0].Quantity)
	assert.Equal(t, 10.0, updated.Subtotal)
	assert.Equal(t, 0.2, updated.GovtLevy)
	assert.Equal(t, 10.2, updated.Total)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))
	require.NoError(t, err)
	updated, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))

	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)
	assert.Equal(t, 2, updated.ItemCount)
}

func TestAddItemStockExceededIsNoOp(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 1))
	require.NoError(t, err)

	updated, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 1))

	assert.ErrorIs(t, err, ErrStockExceeded)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1, updated.Items[0].Quantity, "cart must be unchanged")
}

func TestAddItemOutOfStockProduct(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	updated, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 0))

	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Empty(t, updated.Items)
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, "c1", "mug", 4)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Items[0].Quantity)
	assert.Equal(t, 40.0, updated.Subtotal)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, "c1", "mug", 0)

	require.NoError(t, err)
	assert.Empty(t, updated.Items)
	assert.Equal(t, 0.0, updated.Total)
}

func TestUpdateQuantityBeyondStockIsNoOp(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 3))
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, "c1", "mug", 10)

	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Equal(t, 1, updated.Items[0].Quantity)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.UpdateQuantity(context.Background(), "c1", "ghost", 2)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))
	require.NoError(t, err)

	first, err := svc.RemoveItem(ctx, "c1", "mug")
	require.NoError(t, err)
	assert.Empty(t, first.Items)

	// Removing an absent line stays a no-op.
	second, err := svc.RemoveItem(ctx, "c1", "mug")
	require.NoError(t, err)
	assert.Empty(t, second.Items)
}

func TestClearCart(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", testProduct("tee", 20, 5))
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "c1"))

	cleared := svc.GetCart(ctx, "c1")
	assert.Empty(t, cleared.Items)
	assert.Equal(t, 0.0, cleared.Total)
}

func TestCartsAreIsolatedByID(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("mug", 10, 5))
	require.NoError(t, err)

	other := svc.GetCart(ctx, "c2")
	assert.Empty(t, other.Items)
}

func TestGetCartRecomputesTotals(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", testProduct("banner", 150, 5))
	require.NoError(t, err)

	cart := svc.GetCart(ctx, "c1")
	assert.Equal(t, 150.0, cart.Subtotal)
	assert.Equal(t, 3.0, cart.GovtLevy)
	assert.Equal(t, 153.0, cart.Total)
}
