package cart

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// MemoryStore хранение корзин в памяти процесса (для dev-окружения и тестов)
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewMemoryStore создает пустое хранилище корзин в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*domain.Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cloneCart(c), nil
}

func (s *MemoryStore) Save(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.SessionID] = cloneCart(cart)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
