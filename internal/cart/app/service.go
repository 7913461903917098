package app

import (
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrItemNotInCart     = errors.New("item not in cart")
)

type Service struct {
	store   CartStore
	catalog ProductLookup
}

func NewService(store CartStore, catalog ProductLookup) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
	}
}

func (s *Service) GetCart(sessionID string) domain.Cart {
	return s.store.Get(sessionID)
}

// AddItem puts quantity units of productID into the cart, merging with an
// existing line. The unit price is captured only when the line is created.
func (s *Service) AddItem(sessionID string, productID, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return s.store.Get(sessionID), fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity)
	}

	product, err := s.product(productID)
	if err != nil {
		return s.store.Get(sessionID), err
	}

	return s.store.Update(sessionID, func(c *domain.Cart) error {
		if idx, ok := c.Find(productID); ok {
			line := &c.Items[idx]
			wanted := line.Quantity + quantity
			if wanted > product.Stock {
				return insufficient(product, wanted)
			}
			line.Quantity = wanted
		} else {
			if quantity > product.Stock {
				return insufficient(product, quantity)
			}
			c.Items = append(c.Items, domain.CartLine{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.Image,
				UnitPrice: product.Price,
				Quantity:  quantity,
			})
		}
		c.Recalculate()
		return nil
	})
}

// UpdateItem sets the quantity of a line already in the cart.
func (s *Service) UpdateItem(sessionID string, productID, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return s.store.Get(sessionID), fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity)
	}

	product, err := s.product(productID)
	if err != nil {
		return s.store.Get(sessionID), err
	}
	if quantity > product.Stock {
		return s.store.Get(sessionID), insufficient(product, quantity)
	}

	return s.store.Update(sessionID, func(c *domain.Cart) error {
		idx, ok := c.Find(productID)
		if !ok {
			return fmt.Errorf("%w: product %d", ErrItemNotInCart, productID)
		}
		c.Items[idx].Quantity = quantity
		c.Recalculate()
		return nil
	})
}

// RemoveItem is a no-op when the product is not in the cart.
func (s *Service) RemoveItem(sessionID string, productID int) domain.Cart {
	cart, _ := s.store.Update(sessionID, func(c *domain.Cart) error {
		c.Remove(productID)
		c.Recalculate()
		return nil
	})
	return cart
}

func (s *Service) ClearCart(sessionID string) domain.Cart {
	return s.store.Reset(sessionID)
}

func (s *Service) GetSummary(sessionID string) domain.Summary {
	return s.store.Get(sessionID).Summary()
}

func (s *Service) product(id int) (catalogdomain.Product, error) {
	p, err := s.catalog.GetByID(id)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return catalogdomain.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	if err != nil {
		return catalogdomain.Product{}, err
	}
	return p, nil
}

func insufficient(p catalogdomain.Product, wanted int) error {
	return fmt.Errorf("%w: %s has %d in stock, requested %d", ErrInsufficientStock, p.Name, p.Stock, wanted)
}
