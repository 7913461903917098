package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int, price string, qty int) CartLine {
	return CartLine{ProductID: id, Name: "p", UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

func TestRecalculate(t *testing.T) {
	c := NewCart()
	c.Items = append(c.Items, line(1, "19.99", 3), line(2, "0.10", 7))
	c.Recalculate()

	assert.True(t, c.Items[0].Subtotal.Equal(decimal.RequireFromString("59.97")))
	assert.True(t, c.Items[1].Subtotal.Equal(decimal.RequireFromString("0.7")))
	assert.True(t, c.Total.Equal(decimal.RequireFromString("60.67")), "total=%s", c.Total)
	assert.Equal(t, 10, c.ItemCount)
}

func TestRecalculateIgnoresStaleAggregates(t *testing.T) {
	c := NewCart()
	c.Items = append(c.Items, line(1, "5", 2))
	c.Total = decimal.NewFromInt(999)
	c.ItemCount = 42
	c.Items[0].Subtotal = decimal.NewFromInt(1)

	c.Recalculate()
	assert.True(t, c.Total.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 2, c.ItemCount)
}

func TestRemoveKeepsOrder(t *testing.T) {
	c := NewCart()
	c.Items = append(c.Items, line(1, "1", 1), line(2, "1", 1), line(3, "1", 1))

	require.True(t, c.Remove(2))
	require.False(t, c.Remove(2))
	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].ProductID)
	assert.Equal(t, 3, c.Items[1].ProductID)
}

func TestCloneDoesNotAlias(t *testing.T) {
	c := NewCart()
	c.Items = append(c.Items, line(1, "1", 1))

	cp := c.Clone()
	cp.Items[0].Quantity = 9
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestSummary(t *testing.T) {
	c := NewCart()
	c.Items = append(c.Items, line(4, "50", 2))
	c.Recalculate()

	s := c.Summary()
	assert.Equal(t, 2, s.ItemCount)
	assert.True(t, s.Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, []SummaryLine{{ProductID: 4, Name: "p", Quantity: 2}}, s.Items)
}
