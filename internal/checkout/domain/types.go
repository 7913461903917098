package domain

import "github.com/shopspring/decimal"

type QuoteLine struct {
	ProductID    int             `json:"productId"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
	StockOnHand  int             `json:"stockOnHand"`
	Available    bool            `json:"available"`
	PriceChanged bool            `json:"priceChanged"`
}

// Quote is what checkout would charge for the cart as it stands. It is
// informational only: nothing is reserved and no payment is taken.
type Quote struct {
	Lines     []QuoteLine     `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	Ready     bool            `json:"ready"`
}
