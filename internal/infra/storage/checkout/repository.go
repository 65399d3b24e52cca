package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Repository хранит попытки оформления в памяти процесса.
// Наружу всегда отдаются копии, изменения применяются только через Update.
type Repository struct {
	mu       sync.RWMutex
	attempts map[string]*domain.CheckoutAttempt
}

// NewRepository создает пустой репозиторий попыток
func NewRepository() *Repository {
	return &Repository{attempts: make(map[string]*domain.CheckoutAttempt)}
}

// Create сохраняет новую попытку
func (r *Repository) Create(_ context.Context, attempt *domain.CheckoutAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attempts[attempt.ID]; ok {
		return fmt.Errorf("%w: id=%s", ErrAttemptExists, attempt.ID)
	}
	r.attempts[attempt.ID] = cloneAttempt(attempt)
	return nil
}

// Get возвращает копию попытки по ID
func (r *Repository) Get(_ context.Context, id string) (*domain.CheckoutAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	return cloneAttempt(a), nil
}

// Update заменяет сохраненную попытку
func (r *Repository) Update(_ context.Context, attempt *domain.CheckoutAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attempts[attempt.ID]; !ok {
		return ErrAttemptNotFound
	}
	r.attempts[attempt.ID] = cloneAttempt(attempt)
	return nil
}

// Transition атомарно переводит попытку из фазы from, применяя fn к копии.
// Возвращает domain.ErrIllegalTransition, если текущая фаза отличается от from.
func (r *Repository) Transition(_ context.Context, id string, from domain.CheckoutPhase, fn func(a *domain.CheckoutAttempt)) (*domain.CheckoutAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	if stored.Phase != from {
		return cloneAttempt(stored), fmt.Errorf("%w: attempt %s is %s, expected %s", domain.ErrIllegalTransition, id, stored.Phase, from)
	}

	updated := cloneAttempt(stored)
	fn(updated)
	r.attempts[id] = cloneAttempt(updated)
	return updated, nil
}

// PurgeFinished удаляет завершенные попытки, обновленные раньше before
func (r *Repository) PurgeFinished(_ context.Context, before time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, a := range r.attempts {
		if a.IsFinished() && a.UpdatedAt.Before(before) {
			delete(r.attempts, id)
			removed++
		}
	}
	return removed
}

func cloneAttempt(a *domain.CheckoutAttempt) *domain.CheckoutAttempt {
	c := *a
	if a.StaffID != nil {
		staff := *a.StaffID
		c.StaffID = &staff
	}
	if a.Booking != nil {
		b := *a.Booking
		b.ServiceIDs = append([]int64(nil), a.Booking.ServiceIDs...)
		c.Booking = &b
	}
	c.Invoice.Services = append([]domain.Service(nil), a.Invoice.Services...)
	c.Invoice.MissingServiceIDs = append([]string(nil), a.Invoice.MissingServiceIDs...)
	if a.Invoice.CompletionTime != nil {
		t := *a.Invoice.CompletionTime
		c.Invoice.CompletionTime = &t
	}
	return &c
}
