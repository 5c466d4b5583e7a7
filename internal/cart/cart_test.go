package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesExistingLine(t *testing.T) {
	c := New()
	c.Add("p1", "Liquid Kelp Fertilizer", 9.99, 1)
	c.Add("p1", "Liquid Kelp Fertilizer", 9.99, 2)
	c.Add("p2", "Humic Acid Concentrate", 24.50, 1)

	require.Len(t, c.Items, 2)
	assert.Equal(t, int32(3), c.Items[0].Quantity)
	assert.Equal(t, int32(4), c.ItemCount())
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	c := New()
	c.Add("p1", "Compost Tea", 14.99, 2)
	c.UpdateQuantity("p1", 5)
	assert.Equal(t, int32(5), c.Items[0].Quantity)

	c.UpdateQuantity("p1", 0)
	assert.Empty(t, c.Items)
}

func TestTotals(t *testing.T) {
	c := New()
	c.Add("p1", "Liquid Kelp Fertilizer", 9.99, 2)

	totals := c.Totals()
	assert.Equal(t, 19.98, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping) // free shipping on all orders
	assert.Equal(t, 1.6, totals.Tax)
	assert.Equal(t, 21.58, totals.Total)
}

func TestTotalsEmptyCart(t *testing.T) {
	totals := New().Totals()
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.Add("p1", "Liquid Kelp Fertilizer", 9.99, 2)
	c.Add("p2", "Humic Acid Concentrate", 24.50, 1)

	data, err := c.Snapshot()
	require.NoError(t, err)

	restored, err := Restore(data)
	require.NoError(t, err)
	assert.Equal(t, c.Items, restored.Items)
	assert.Equal(t, c.Totals(), restored.Totals())
}
