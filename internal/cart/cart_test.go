package cart

import (
	"context"
	"testing"

	"glamora/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string, price float64) model.CartItem {
	return model.CartItem{
		ProductID: id,
		Name:      "Product " + id,
		Price:     price,
		Image:     "/images/" + id + ".jpg",
		Category:  "Skincare",
	}
}

func TestCart_AddItem_IncrementsQuantity(t *testing.T) {
	c := New("session-1")

	c.AddItem(testItem("p1", 20))
	c.AddItem(testItem("p1", 20))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.TotalItems())
}

func TestCart_AddItem_CapturesPriceAtAddTime(t *testing.T) {
	c := New("session-1")

	c.AddItem(testItem("p1", 20))
	// A later add with a changed price still increments the original line;
	// the captured price is not re-fetched.
	c.AddItem(testItem("p1", 25))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 20.0, c.Items[0].Price)
	assert.Equal(t, 40.0, c.TotalPrice())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectPresent bool
		expectedQty   int
	}{
		{"Sets quantity exactly", 5, true, 5},
		{"Quantity one keeps item", 1, true, 1},
		{"Zero removes item", 0, false, 0},
		{"Negative removes item", -3, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("session-1")
			c.AddItem(testItem("p1", 10))
			c.AddItem(testItem("p1", 10))

			c.UpdateQuantity("p1", tt.quantity)

			if tt.expectPresent {
				require.Len(t, c.Items, 1)
				assert.Equal(t, tt.expectedQty, c.Items[0].Quantity)
			} else {
				assert.Empty(t, c.Items)
				assert.Equal(t, 0, c.TotalItems())
			}
		})
	}
}

func TestCart_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c := New("session-1")
	c.AddItem(testItem("p1", 10))

	c.UpdateQuantity("p9", 3)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "p1", c.Items[0].ProductID)
}

func TestCart_RemoveItem_AbsentIsNoop(t *testing.T) {
	c := New("session-1")
	c.AddItem(testItem("p1", 10))

	c.RemoveItem("p9")

	assert.Len(t, c.Items, 1)
}

func TestCart_Totals(t *testing.T) {
	c := New("session-1")

	c.AddItem(testItem("p1", 10))
	c.AddItem(testItem("p1", 10))
	c.AddItem(testItem("p2", 5))

	assert.Equal(t, 25.0, c.TotalPrice())
	assert.Equal(t, 3, c.TotalItems())
}

func TestCart_IsInCart(t *testing.T) {
	c := New("session-1")
	c.AddItem(testItem("p1", 10))

	assert.True(t, c.IsInCart("p1"))
	assert.False(t, c.IsInCart("p2"))
}

func TestCart_Clear(t *testing.T) {
	c := New("session-1")
	c.AddItem(testItem("p1", 10))
	c.AddItem(testItem("p2", 5))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalPrice())
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_Snapshot_IsDefensiveCopy(t *testing.T) {
	c := New("session-1")
	c.AddItem(testItem("p1", 10))

	snapshot := c.Snapshot()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, c.Items[0].Quantity)
}

// Scenario: empty cart, add A twice, set quantity to 1, then remove.
func TestCart_Lifecycle(t *testing.T) {
	c := New("session-1")
	assert.Equal(t, 0.0, c.TotalPrice())

	c.AddItem(testItem("A", 20))
	c.AddItem(testItem("A", 20))
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 40.0, c.TotalPrice())

	c.UpdateQuantity("A", 1)
	assert.Equal(t, 20.0, c.TotalPrice())

	c.RemoveItem("A")
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestMemoryStore_LoadUnknownSessionReturnsEmptyCart(t *testing.T) {
	store := NewMemoryStore()

	c, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", c.SessionID)
	assert.Empty(t, c.Items)
}

func TestMemoryStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := New("session-1")
	c.AddItem(testItem("p1", 10))
	c.AddItem(testItem("p2", 5))
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, c.Items, loaded.Items)

	// Mutating the loaded copy must not affect the stored cart.
	loaded.AddItem(testItem("p3", 7))
	again, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, again.Items, 2)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := New("session-1")
	c.AddItem(testItem("p1", 10))
	require.NoError(t, store.Save(ctx, c))
	require.NoError(t, store.Delete(ctx, "session-1"))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}
