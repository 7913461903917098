package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

const DefaultSuggestionLimit = 3

// Service is the read-only catalog. It is built once and never mutated, so it is
// safe for concurrent use without locking.
type Service struct {
	products   []domain.Product
	byID       map[int]int
	byCategory map[string][]int
	categories []string
}

type ListFilter struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

type Page struct {
	Products []domain.Product
	Total    int
	Offset   int
	Limit    int
}

// Load builds a catalog from src.
func Load(ctx context.Context, src ProductSource) (*Service, error) {
	products, err := src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return NewService(products)
}

func NewService(products []domain.Product) (*Service, error) {
	s := &Service{
		products:   make([]domain.Product, 0, len(products)),
		byID:       make(map[int]int, len(products)),
		byCategory: make(map[string][]int),
	}

	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: product %d: id must be positive, got %d", ErrInvalidInput, i, p.ID)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d", ErrInvalidInput, p.ID)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: product %d: name is required", ErrInvalidInput, p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("%w: product %d: unknown category %q", ErrInvalidInput, p.ID, p.Category)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d: price cannot be negative", ErrInvalidInput, p.ID)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("%w: product %d: stock cannot be negative", ErrInvalidInput, p.ID)
		}

		idx := len(s.products)
		s.products = append(s.products, p)
		s.byID[p.ID] = idx

		key := strings.ToLower(string(p.Category))
		if _, seen := s.byCategory[key]; !seen {
			s.categories = append(s.categories, string(p.Category))
		}
		s.byCategory[key] = append(s.byCategory[key], idx)
	}

	return s, nil
}

func (s *Service) GetByID(id int) (domain.Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.products[idx], nil
}

// GetByCategory matches the category name case-insensitively.
func (s *Service) GetByCategory(category string) []domain.Product {
	return s.pick(s.byCategory[strings.ToLower(category)])
}

// ListCategories returns distinct category names in first-seen order.
func (s *Service) ListCategories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// IsKnownCategory reports whether name is one of the enumerated categories,
// compared case-sensitively.
func (s *Service) IsKnownCategory(name string) bool {
	return domain.Category(name).Valid()
}

// Search does a case-insensitive substring match over name, description and tags.
// Results keep catalog order.
func (s *Service) Search(query string) []domain.Product {
	q := strings.ToLower(query)
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// SuggestionsFor returns other products of the same category. A non-positive
// limit falls back to DefaultSuggestionLimit.
func (s *Service) SuggestionsFor(id, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	idx, ok := s.byID[id]
	if !ok {
		return []domain.Product{}
	}
	product := s.products[idx]

	out := make([]domain.Product, 0, limit)
	for _, i := range s.byCategory[strings.ToLower(string(product.Category))] {
		if len(out) == limit {
			break
		}
		if s.products[i].ID == id {
			continue
		}
		out = append(out, s.products[i])
	}
	return out
}

// List filters by category, then search (search replaces the category filter
// when both are set), then paginates. A zero limit means "everything after offset".
func (s *Service) List(f ListFilter) Page {
	result := s.All()
	if f.Category != "" {
		result = s.GetByCategory(f.Category)
	}
	if f.Search != "" {
		result = s.Search(f.Search)
	}

	total := len(result)
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if f.Limit > 0 && offset+f.Limit < total {
		end = offset + f.Limit
	}

	limit := f.Limit
	if limit <= 0 {
		limit = total
	}

	return Page{
		Products: result[offset:end],
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	}
}

func (s *Service) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) pick(idxs []int) []domain.Product {
	out := make([]domain.Product, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.products[i])
	}
	return out
}
