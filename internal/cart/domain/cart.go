package domain

import "github.com/shopspring/decimal"

type CartLine struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cart is a session's lines in insertion order plus aggregates derived from them.
// Total and ItemCount are only trustworthy after Recalculate.
type Cart struct {
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func NewCart() Cart {
	return Cart{Items: []CartLine{}, Total: decimal.Zero}
}

// Recalculate recomputes every subtotal and both aggregates from scratch.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	count := 0
	for i := range c.Items {
		line := &c.Items[i]
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(line.Subtotal)
		count += line.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

func (c *Cart) Find(productID int) (int, bool) {
	for i, line := range c.Items {
		if line.ProductID == productID {
			return i, true
		}
	}
	return -1, false
}

// Remove drops the line for productID and reports whether one existed.
func (c *Cart) Remove(productID int) bool {
	i, ok := c.Find(productID)
	if !ok {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// Clone returns a deep copy so callers never share a line slice with the store.
func (c Cart) Clone() Cart {
	items := make([]CartLine, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

type SummaryLine struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type Summary struct {
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
	Items     []SummaryLine   `json:"items"`
}

func (c Cart) Summary() Summary {
	lines := make([]SummaryLine, 0, len(c.Items))
	for _, line := range c.Items {
		lines = append(lines, SummaryLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
		})
	}
	return Summary{
		ItemCount: c.ItemCount,
		Total:     c.Total,
		Items:     lines,
	}
}
