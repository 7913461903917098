package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// ProductSource supplies the product table the catalog is built from at startup.
type ProductSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}
