package app

import (
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type CartStore interface {
	Get(sessionID string) domain.Cart
	Reset(sessionID string) domain.Cart
	Update(sessionID string, fn func(*domain.Cart) error) (domain.Cart, error)
}

// ProductLookup resolves products for stock and price checks. It must return an
// error wrapping the catalog's not-found error when the id is unknown.
type ProductLookup interface {
	GetByID(id int) (catalogdomain.Product, error)
}
