package memory

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestGetCreatesEmptyCartLazily(t *testing.T) {
	s := NewStore()
	require.Equal(t, 0, s.Len())

	c := s.Get("s1")
	assert.Empty(t, c.Items)
	assert.NotNil(t, c.Items)
	assert.True(t, c.Total.IsZero())
	assert.Equal(t, 0, c.ItemCount)
	assert.Equal(t, 1, s.Len())

	s.Get("s1")
	assert.Equal(t, 1, s.Len())
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	c := domain.NewCart()
	c.Items = append(c.Items, domain.CartLine{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)})
	c.Recalculate()
	s.Set("s1", c)

	got := s.Get("s1")
	got.Items[0].Quantity = 50

	assert.Equal(t, 1, s.Get("s1").Items[0].Quantity)
}

func TestResetKeepsKey(t *testing.T) {
	s := NewStore()
	c := domain.NewCart()
	c.Items = append(c.Items, domain.CartLine{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(5)})
	c.Recalculate()
	s.Set("s1", c)

	cleared := s.Reset("s1")
	assert.Empty(t, cleared.Items)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Get("s1").Items)
}

func TestUpdateErrorLeavesCartUntouched(t *testing.T) {
	s := NewStore()
	_, err := s.Update("s1", func(c *domain.Cart) error {
		c.Items = append(c.Items, domain.CartLine{ProductID: 1, Quantity: 1})
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	got, err := s.Update("s1", func(c *domain.Cart) error {
		c.Items[0].Quantity = 99
		c.Items = append(c.Items, domain.CartLine{ProductID: 2, Quantity: 1})
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, 1, s.Get("s1").Items[0].Quantity)
}

func TestUpdateSerializesSameSession(t *testing.T) {
	s := NewStore()
	const n = 200

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := s.Update("shared", func(c *domain.Cart) error {
				if idx, ok := c.Find(1); ok {
					c.Items[idx].Quantity++
					return nil
				}
				c.Items = append(c.Items, domain.CartLine{ProductID: 1, Quantity: 1})
				return nil
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	c := s.Get("shared")
	require.Len(t, c.Items, 1)
	assert.Equal(t, n, c.Items[0].Quantity)
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	s := NewStore()
	const sessions = 50

	var g errgroup.Group
	for i := 0; i < sessions; i++ {
		id := fmt.Sprintf("session-%d", i)
		g.Go(func() error {
			_, err := s.Update(id, func(c *domain.Cart) error {
				c.Items = append(c.Items, domain.CartLine{ProductID: 7, Quantity: 1})
				return nil
			})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, sessions, s.Len())

	for i := 0; i < sessions; i++ {
		assert.Len(t, s.Get(fmt.Sprintf("session-%d", i)).Items, 1)
	}
}
