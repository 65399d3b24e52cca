package staffbookings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/bookingservice"
)

// Service собирает расписание сотрудника: записи, покупатели, мастер и услуги
// из независимых сервисов. Коллекция сотрудника живет до явного обновления
// и меняется только через ApplyTransition и Delete.
type Service struct {
	bookings       BookingServiceClient
	users          UserServiceClient
	offerings      OfferingServiceClient
	staff          StaffServiceClient
	metrics        Metrics
	logger         Logger
	maxConcurrency int

	mu       sync.Mutex
	sessions map[int64]*session
}

// session коллекция записей одного сотрудника.
// generation меняется только при обновлении; patches копит локальные изменения,
// сделанные пока обновление в пути, чтобы применить их к свежим данным.
type session struct {
	generation uint64
	refreshing int
	loaded     bool
	bookings   []domain.EnrichedBooking
	patches    []patch
}

// patch локальное изменение записи: новый статус или удаление
type patch struct {
	bookingID int64
	status    domain.Status
	deleted   bool
}

// NewService создает новый экземпляр сервиса расписания сотрудников
func NewService(
	bookings BookingServiceClient,
	users UserServiceClient,
	offerings OfferingServiceClient,
	staff StaffServiceClient,
	metrics Metrics,
	logger Logger,
	maxConcurrency int,
) *Service {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Service{
		bookings:       bookings,
		users:          users,
		offerings:      offerings,
		staff:          staff,
		metrics:        metrics,
		logger:         logger,
		maxConcurrency: maxConcurrency,
		sessions:       make(map[int64]*session),
	}
}

// Load возвращает коллекцию сотрудника, загружая ее при первом обращении
func (s *Service) Load(ctx context.Context, staffID int64) ([]domain.EnrichedBooking, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	sess, ok := s.sessions[staffID]
	if ok && sess.loaded {
		result := cloneBookings(sess.bookings)
		s.mu.Unlock()
		return result, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx, staffID)
}

// Refresh заново получает и обогащает записи сотрудника.
// Результат обновления, вытесненного более поздним обновлением, не записывается в коллекцию.
// Изменения статусов и удаления, сделанные во время обновления, применяются к свежим данным.
func (s *Service) Refresh(ctx context.Context, staffID int64) ([]domain.EnrichedBooking, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	generation := s.beginRefresh(staffID)
	defer s.endRefresh(staffID)
	s.logger.Info("Refresh: staff=%d, generation=%d", staffID, generation)

	// 1. Параллельно получаем записи и список сотрудников
	var (
		raw      []domain.Booking
		staffIdx map[int64]domain.Staff
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.bookings.ListByStaff(gctx, staffID)
		if err != nil {
			return err
		}
		raw = list
		return nil
	})
	g.Go(func() error {
		staffIdx = s.loadStaff(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Refresh: failed to list bookings of staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	// 2. Обогащаем записи параллельно с ограничением
	enriched, err := s.enrich(ctx, staffID, raw, staffIdx)
	if err != nil {
		return nil, err
	}

	// 3. Сохраняем, если обновление не вытеснено
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[staffID]
	if sess.generation != generation {
		s.logger.Warn("Refresh: staff=%d generation=%d superseded by %d, result discarded",
			staffID, generation, sess.generation)
		if sess.loaded {
			return cloneBookings(sess.bookings), nil
		}
		return enriched, nil
	}

	enriched = applyPatches(enriched, sess.patches)
	sess.patches = nil
	sess.bookings = enriched
	sess.loaded = true
	s.logger.Info("Refresh: staff=%d loaded %d of %d bookings", staffID, len(enriched), len(raw))
	return cloneBookings(enriched), nil
}

// ApplyTransition применяет действие сотрудника к записи.
// Недопустимое действие отклоняется до обращения к сервису бронирований;
// локальный статус меняется только после успешного ответа сервиса.
func (s *Service) ApplyTransition(ctx context.Context, staffID, bookingID int64, action domain.Action) (*domain.EnrichedBooking, error) {
	s.logger.Info("ApplyTransition: staff=%d, booking=%d, action=%s", staffID, bookingID, action)

	// 1. Загружаем коллекцию, если сотрудник еще не открывал расписание
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if !s.isLoaded(staffID) {
		if _, err := s.Refresh(ctx, staffID); err != nil {
			return nil, err
		}
	}

	// 2. Проверяем допустимость действия для известного статуса
	s.mu.Lock()
	current, err := s.find(staffID, bookingID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	target, err := domain.NextStatus(current.Booking.Status, action)
	if err != nil {
		s.logger.Warn("ApplyTransition: booking=%d: %v", bookingID, err)
		return nil, err
	}

	// 3. Меняем статус в сервисе бронирований
	updated, err := s.bookings.UpdateStatus(ctx, bookingID, target)
	if err != nil {
		s.logger.Error("ApplyTransition: failed to update booking=%d to %s: %v", bookingID, target, err)
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrBookingNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	status := target
	if updated != nil {
		status = updated.Status
	}

	// 4. Патчим локальную запись
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[staffID]
	sess.record(patch{bookingID: bookingID, status: status})
	for i := range sess.bookings {
		if sess.bookings[i].Booking.ID == bookingID {
			sess.bookings[i].Booking.Status = status
			patched := sess.bookings[i]
			s.logger.Info("ApplyTransition: booking=%d is now %s", bookingID, status)
			return &patched, nil
		}
	}

	// запись исчезла из коллекции, пока шел запрос
	s.logger.Warn("ApplyTransition: booking=%d left the collection of staff=%d during update", bookingID, staffID)
	current.Booking.Status = status
	return current, nil
}

// Delete удаляет запись в сервисе бронирований и из коллекции независимо от статуса
func (s *Service) Delete(ctx context.Context, staffID, bookingID int64) error {
	s.logger.Info("Delete: staff=%d, booking=%d", staffID, bookingID)

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		s.logger.Error("Delete: failed to delete booking=%d: %v", bookingID, err)
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			return fmt.Errorf("%w: %w", ErrBookingNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[staffID]
	if !ok {
		return nil
	}
	sess.record(patch{bookingID: bookingID, deleted: true})
	sess.bookings = applyPatches(sess.bookings, []patch{{bookingID: bookingID, deleted: true}})
	return nil
}

// Вспомогательные методы

func (s *Service) beginRefresh(staffID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[staffID]
	if !ok {
		sess = &session{}
		s.sessions[staffID] = sess
	}
	sess.generation++
	sess.refreshing++
	return sess.generation
}

func (s *Service) endRefresh(staffID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[staffID]
	sess.refreshing--
	if sess.refreshing == 0 {
		sess.patches = nil
	}
}

func (s *Service) isLoaded(staffID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[staffID]
	return ok && sess.loaded
}

// record запоминает изменение, если обновление коллекции в пути
func (sess *session) record(p patch) {
	if sess.refreshing > 0 {
		sess.patches = append(sess.patches, p)
	}
}

// applyPatches применяет локальные изменения по порядку, возвращая новый срез
func applyPatches(src []domain.EnrichedBooking, patches []patch) []domain.EnrichedBooking {
	if len(patches) == 0 {
		return src
	}

	result := make([]domain.EnrichedBooking, 0, len(src))
	for _, b := range src {
		deleted := false
		for _, p := range patches {
			if p.bookingID != b.Booking.ID {
				continue
			}
			if p.deleted {
				deleted = true
				break
			}
			b.Booking.Status = p.status
		}
		if !deleted {
			result = append(result, b)
		}
	}
	return result
}

// find возвращает копию записи из коллекции; вызывается под s.mu
func (s *Service) find(staffID, bookingID int64) (*domain.EnrichedBooking, error) {
	sess, ok := s.sessions[staffID]
	if !ok || !sess.loaded {
		return nil, fmt.Errorf("%w: staff=%d has no loaded bookings", ErrBookingNotFound, staffID)
	}
	for i := range sess.bookings {
		if sess.bookings[i].Booking.ID == bookingID {
			b := sess.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, bookingID)
}

// loadStaff получает сотрудников; при ошибке расписание строится без данных мастера
func (s *Service) loadStaff(ctx context.Context) map[int64]domain.Staff {
	list, err := s.staff.ListStaff(ctx)
	if err != nil {
		s.logger.Warn("loadStaff: staff details unavailable: %v", err)
		s.metrics.IncEnrichmentDegraded(degradedStaffMissing)
		return map[int64]domain.Staff{}
	}

	idx := make(map[int64]domain.Staff, len(list))
	for _, st := range list {
		idx[st.ID] = st
	}
	return idx
}

// enrich обогащает записи, сохраняя исходный порядок.
// Запись без покупателя отбрасывается, неудачная услуга помечается LookupFailed.
func (s *Service) enrich(ctx context.Context, staffID int64, raw []domain.Booking, staffIdx map[int64]domain.Staff) ([]domain.EnrichedBooking, error) {
	res := newResolver(s.users, s.offerings)
	slots := make([]*domain.EnrichedBooking, len(raw))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i := range raw {
		i := i
		g.Go(func() error {
			slots[i] = s.enrichOne(gctx, res, raw[i], staffID, staffIdx)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	result := make([]domain.EnrichedBooking, 0, len(raw))
	for _, b := range slots {
		if b != nil {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (s *Service) enrichOne(ctx context.Context, res *resolver, b domain.Booking, staffID int64, staffIdx map[int64]domain.Staff) *domain.EnrichedBooking {
	var (
		wg       sync.WaitGroup
		customer *domain.User
		userErr  error
	)
	lookups := make([]domain.ServiceLookup, len(b.ServiceIDs))

	wg.Add(1)
	go func() {
		defer wg.Done()
		customer, userErr = res.user(ctx, b.CustomerID)
	}()

	for i, id := range b.ServiceIDs {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			svc, err := res.offering(ctx, id)
			if err != nil {
				s.logger.Warn("enrich: booking=%d service=%d lookup failed: %v", b.ID, id, err)
				s.metrics.IncEnrichmentDegraded(degradedServiceFailed)
				lookups[i] = domain.ServiceLookup{ServiceID: id, Outcome: domain.LookupFailed}
				return
			}
			lookups[i] = domain.ServiceLookup{ServiceID: id, Outcome: domain.LookupResolved, Service: svc}
		}(i, id)
	}
	wg.Wait()

	if userErr != nil || customer == nil {
		s.logger.Warn("enrich: dropping booking=%d, customer=%d lookup failed: %v", b.ID, b.CustomerID, userErr)
		s.metrics.IncEnrichmentDegraded(degradedBookingDropped)
		return nil
	}

	ownerID := staffID
	if b.StaffID != nil {
		ownerID = *b.StaffID
	}
	var staff *domain.Staff
	if st, ok := staffIdx[ownerID]; ok {
		staff = &st
	}

	return &domain.EnrichedBooking{
		Booking:      b,
		Customer:     *customer,
		Staff:        staff,
		Lookups:      lookups,
		ServiceNames: joinServiceNames(lookups),
		Duration:     formatDuration(b.Duration()),
	}
}

func cloneBookings(src []domain.EnrichedBooking) []domain.EnrichedBooking {
	dst := make([]domain.EnrichedBooking, len(src))
	copy(dst, src)
	return dst
}
