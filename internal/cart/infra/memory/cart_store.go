package memory

import (
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type entry struct {
	mu   sync.Mutex
	cart domain.Cart
}

// Store keeps one cart per session identifier for the life of the process.
// Each session has its own lock; the store-wide lock only guards inserting a
// new session key. Entries are never evicted.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*entry
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*entry)}
}

func (s *Store) entry(sessionID string) *entry {
	s.mu.RLock()
	e, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.carts[sessionID]; ok {
		return e
	}
	e = &entry{cart: domain.NewCart()}
	s.carts[sessionID] = e
	return e
}

// Get returns a copy of the session's cart, creating an empty one if needed.
func (s *Store) Get(sessionID string) domain.Cart {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Clone()
}

func (s *Store) Set(sessionID string, cart domain.Cart) {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = cart.Clone()
}

// Reset empties the session's cart but keeps its key.
func (s *Store) Reset(sessionID string) domain.Cart {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = domain.NewCart()
	return e.cart.Clone()
}

// Update runs fn on a working copy of the session's cart while holding that
// session's lock. The copy replaces the stored cart only when fn returns nil;
// on error the stored cart is returned untouched along with the error.
func (s *Store) Update(sessionID string, fn func(*domain.Cart) error) (domain.Cart, error) {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.cart.Clone()
	if err := fn(&work); err != nil {
		return e.cart.Clone(), err
	}
	e.cart = work
	return work.Clone(), nil
}

// Len is the number of session keys held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
