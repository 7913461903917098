package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]CartItem, error)
}

type CartItem struct {
	ProductID int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int) (Product, error)
}

type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
	Stock int
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNotImplemented = errors.New("checkout is not available yet")
)

// Quote re-checks every cart line against the live catalog. Lines keep the
// price captured when they were added; CurrentPrice is informational.
func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", it.ProductID, err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID:    it.ProductID,
				Name:         it.Name,
				Quantity:     it.Quantity,
				UnitPrice:    it.UnitPrice,
				CurrentPrice: product.Price,
				LineTotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
				StockOnHand:  product.Stock,
				Available:    it.Quantity <= product.Stock,
				PriceChanged: !it.UnitPrice.Equal(product.Price),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	quote := domain.Quote{Lines: lines, Total: decimal.Zero, Ready: true}
	for _, line := range lines {
		quote.Total = quote.Total.Add(line.LineTotal)
		quote.ItemCount += line.Quantity
		if !line.Available {
			quote.Ready = false
		}
	}

	return quote, nil
}

// PlaceOrder is the checkout entry point. Payment and order capture are out of
// scope for the storefront, so it validates the quote and stops there.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (domain.Quote, error) {
	quote, err := s.Quote(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}
	return quote, ErrNotImplemented
}
