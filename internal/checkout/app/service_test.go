package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart []CartItem

func (f fakeCart) GetCart(ctx context.Context, sessionID string) ([]CartItem, error) {
	return f, nil
}

type fakeCatalog map[int]Product

func (f fakeCatalog) GetProduct(ctx context.Context, productID int) (Product, error) {
	p, ok := f[productID]
	if !ok {
		return Product{}, errors.New("missing")
	}
	return p, nil
}

var catalog = fakeCatalog{
	1: {ID: 1, Name: "Persian Carpet", Price: decimal.NewFromInt(500), Stock: 15},
	2: {ID: 2, Name: "Caribbean Drum", Price: decimal.NewFromInt(130), Stock: 1},
}

func TestQuote(t *testing.T) {
	cart := fakeCart{
		{ProductID: 1, Name: "Persian Carpet", Quantity: 2, UnitPrice: decimal.NewFromInt(500)},
		{ProductID: 2, Name: "Caribbean Drum", Quantity: 3, UnitPrice: decimal.NewFromInt(120)},
	}
	svc := NewService(cart, catalog, 0)

	q, err := svc.Quote(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, q.Lines, 2)

	assert.True(t, q.Total.Equal(decimal.NewFromInt(1360)), "total=%s", q.Total)
	assert.Equal(t, 5, q.ItemCount)
	assert.False(t, q.Ready)

	assert.Equal(t, 1, q.Lines[0].ProductID)
	assert.True(t, q.Lines[0].Available)
	assert.False(t, q.Lines[0].PriceChanged)

	drum := q.Lines[1]
	assert.False(t, drum.Available)
	assert.True(t, drum.PriceChanged)
	assert.True(t, drum.LineTotal.Equal(decimal.NewFromInt(360)))
	assert.True(t, drum.CurrentPrice.Equal(decimal.NewFromInt(130)))
}

func TestQuoteEmptyCart(t *testing.T) {
	svc := NewService(fakeCart{}, catalog, 2)
	_, err := svc.Quote(context.Background(), "s")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestQuoteUnknownProduct(t *testing.T) {
	svc := NewService(fakeCart{{ProductID: 9, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}, catalog, 2)
	_, err := svc.Quote(context.Background(), "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 9")
}

func TestPlaceOrderIsStubbed(t *testing.T) {
	svc := NewService(fakeCart{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(500)}}, catalog, 2)
	q, err := svc.PlaceOrder(context.Background(), "s")
	require.ErrorIs(t, err, ErrNotImplemented)
	assert.True(t, q.Ready)
}
