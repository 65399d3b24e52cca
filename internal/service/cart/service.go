package cart

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	cartStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/cart"
)

// sessionLocks количество мьютексов для сериализации изменений корзины одной сессии
const sessionLocks = 64

// Service сервис корзины выбранных услуг.
// Каждое изменение записывается в хранилище синхронно, срок жизни продлевается на сутки от записи.
type Service struct {
	store        Store
	timeProvider TimeProvider
	logger       Logger
	locks        [sessionLocks]sync.Mutex
}

// NewService создает новый экземпляр сервиса корзины
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает корзину сессии; отсутствующая или истекшая корзина считается пустой
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	return s.load(ctx, sessionID)
}

// AddService добавляет услугу в конец корзины.
// Если услуга уже есть, возвращает текущую корзину и ErrAlreadyInCart, ничего не записывая.
func (s *Service) AddService(ctx context.Context, sessionID, serviceID string) (*domain.Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	id, err := normalizeID(serviceID)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cart.Contains(id) {
		s.logger.Warn("AddService: service=%s already in cart of session=%s", id, sessionID)
		return cart, ErrAlreadyInCart
	}

	cart.ServiceIDs = append(cart.ServiceIDs, id)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("AddService: added service=%s to session=%s, size=%d", id, sessionID, len(cart.ServiceIDs))
	return cart, nil
}

// RemoveService удаляет услугу из корзины; отсутствие услуги ошибкой не считается
func (s *Service) RemoveService(ctx context.Context, sessionID, serviceID string) (*domain.Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	id, err := normalizeID(serviceID)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.Contains(id) {
		return cart, nil
	}

	cart.ServiceIDs = without(cart.ServiceIDs, id)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("RemoveService: removed service=%s from session=%s, size=%d", id, sessionID, len(cart.ServiceIDs))
	return cart, nil
}

// MergeExternal объединяет корзину с внешне переданными услугами (например "записаться сейчас").
// Существующие позиции остаются первыми, новые добавляются без дублей.
func (s *Service) MergeExternal(ctx context.Context, sessionID string, serviceIDs []string) (*domain.Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	added := 0
	for _, raw := range serviceIDs {
		id, err := normalizeID(raw)
		if err != nil {
			s.logger.Warn("MergeExternal: skipping invalid service id %q for session=%s", raw, sessionID)
			continue
		}
		if cart.Contains(id) {
			continue
		}
		cart.ServiceIDs = append(cart.ServiceIDs, id)
		added++
	}

	if added == 0 {
		return cart, nil
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("MergeExternal: merged %d services into session=%s, size=%d", added, sessionID, len(cart.ServiceIDs))
	return cart, nil
}

// Reconcile удаляет из корзины услуги, которых нет в каталоге текущего салона.
// Для каждой удаленной позиции название берется из текущего или предыдущего снимка каталога.
// Повторный вызов с тем же каталогом ничего не меняет.
func (s *Service) Reconcile(ctx context.Context, sessionID string, current, previous []domain.Service) (*ReconcileResult, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	valid := make(map[string]struct{}, len(current))
	for _, svc := range current {
		valid[strconv.FormatInt(svc.ID, 10)] = struct{}{}
	}

	kept := make([]string, 0, len(cart.ServiceIDs))
	dropped := make([]domain.DroppedEntry, 0)
	for _, id := range cart.ServiceIDs {
		if _, ok := valid[id]; ok {
			kept = append(kept, id)
			continue
		}
		dropped = append(dropped, domain.DroppedEntry{
			ServiceID: id,
			Name:      resolveName(id, current, previous),
		})
	}

	if len(dropped) == 0 {
		return &ReconcileResult{Cart: cart, Dropped: dropped}, nil
	}

	cart.ServiceIDs = kept
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("Reconcile: dropped %d services from session=%s, size=%d", len(dropped), sessionID, len(kept))
	return &ReconcileResult{Cart: cart, Dropped: dropped}, nil
}

// Clear очищает корзину сессии
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := validateSession(sessionID); err != nil {
		return err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Clear: failed to delete cart of session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Clear - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: cleared cart of session=%s", sessionID)
	return nil
}

// Вспомогательные методы

// load читает корзину; отсутствующая или истекшая корзина возвращается пустой
func (s *Service) load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cartStorage.ErrCartNotFound) {
			return emptyCart(sessionID), nil
		}
		s.logger.Error("load: failed to read cart of session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load - store error: %v", ErrInternal, err)
	}

	if cart.IsExpired(s.timeProvider.Now()) {
		s.logger.Info("load: cart of session=%s expired at %s", sessionID, cart.ExpiresAt)
		return emptyCart(sessionID), nil
	}

	if cart.ServiceIDs == nil {
		cart.ServiceIDs = []string{}
	}
	cart.SessionID = sessionID
	return cart, nil
}

// save записывает корзину с новым сроком жизни: сутки от момента записи
func (s *Service) save(ctx context.Context, cart *domain.Cart) error {
	cart.ExpiresAt = s.timeProvider.Now().Add(domain.CartTTL)
	if err := s.store.Save(ctx, cart); err != nil {
		s.logger.Error("save: failed to write cart of session=%s: %v", cart.SessionID, err)
		return fmt.Errorf("%w: save - store error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	m := &s.locks[h.Sum32()%sessionLocks]
	m.Lock()
	return m.Unlock
}

func emptyCart(sessionID string) *domain.Cart {
	return &domain.Cart{SessionID: sessionID, ServiceIDs: []string{}}
}

func validateSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	return nil
}

func normalizeID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrInvalidServiceID
	}
	return id, nil
}

func without(ids []string, id string) []string {
	result := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			result = append(result, existing)
		}
	}
	return result
}

// resolveName ищет название услуги сначала в текущем, затем в предыдущем снимке каталога
func resolveName(id string, snapshots ...[]domain.Service) string {
	for _, catalog := range snapshots {
		for i := range catalog {
			if strconv.FormatInt(catalog[i].ID, 10) == id {
				return catalog[i].DisplayName()
			}
		}
	}
	return ""
}
