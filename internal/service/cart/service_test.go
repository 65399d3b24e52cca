package cart

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	cartStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/cart"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type failingStore struct {
	*cartStorage.MemoryStore
	saveErr error
}

func (s *failingStore) Save(context.Context, *domain.Cart) error { return s.saveErr }

func newTestService(store Store) (*Service, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewService(store, logger.Nop())
	svc.timeProvider = clock
	return svc, clock
}

func catalog(entries map[int64]string) []domain.Service {
	services := make([]domain.Service, 0, len(entries))
	for id, name := range entries {
		services = append(services, domain.Service{ID: id, Steps: name})
	}
	return services
}

func TestService_AddAndRemove(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(cartStorage.NewMemoryStore())

	_, err := svc.AddService(ctx, "s1", "3")
	require.NoError(t, err)
	c, err := svc.AddService(ctx, "s1", "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, c.ServiceIDs)

	c, err = svc.AddService(ctx, "s1", "3")
	assert.ErrorIs(t, err, ErrAlreadyInCart)
	assert.Equal(t, []string{"3", "7"}, c.ServiceIDs)

	c, err = svc.RemoveService(ctx, "s1", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, c.ServiceIDs)

	c, err = svc.RemoveService(ctx, "s1", "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, c.ServiceIDs)
}

func TestService_RandomSequencesNeverDuplicate(t *testing.T) {
	ctx := context.Background()
	rnd := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		svc, _ := newTestService(cartStorage.NewMemoryStore())
		expected := make([]string, 0)

		for step := 0; step < 40; step++ {
			id := string(rune('a' + rnd.Intn(6)))
			if rnd.Intn(2) == 0 {
				_, err := svc.AddService(ctx, "s", id)
				if !contains(expected, id) {
					require.NoError(t, err)
					expected = append(expected, id)
				} else {
					require.ErrorIs(t, err, ErrAlreadyInCart)
				}
			} else {
				_, err := svc.RemoveService(ctx, "s", id)
				require.NoError(t, err)
				expected = remove(expected, id)
			}
		}

		c, err := svc.Get(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, expected, c.ServiceIDs)
		assert.Len(t, uniq(c.ServiceIDs), len(c.ServiceIDs))
	}
}

func TestService_MergeExternal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(cartStorage.NewMemoryStore())

	_, err := svc.AddService(ctx, "s1", "3")
	require.NoError(t, err)

	c, err := svc.MergeExternal(ctx, "s1", []string{"5", "3", " ", "5", "9"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "5", "9"}, c.ServiceIDs)
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(cartStorage.NewMemoryStore())

	_, err := svc.MergeExternal(ctx, "s1", []string{"1", "2", "3", "4"})
	require.NoError(t, err)

	current := catalog(map[int64]string{1: "Cắt tóc|Gội", 3: "Nhuộm"})
	previous := catalog(map[int64]string{2: "Uốn tóc|Hấp"})

	res, err := svc.Reconcile(ctx, "s1", current, previous)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, res.Cart.ServiceIDs)
	assert.Equal(t, []domain.DroppedEntry{
		{ServiceID: "2", Name: "Uốn tóc"},
		{ServiceID: "4", Name: ""},
	}, res.Dropped)

	again, err := svc.Reconcile(ctx, "s1", current, previous)
	require.NoError(t, err)
	assert.Empty(t, again.Dropped)
	assert.Equal(t, res.Cart.ServiceIDs, again.Cart.ServiceIDs)
}

func TestService_PersistenceExpiry(t *testing.T) {
	ctx := context.Background()
	store := cartStorage.NewMemoryStore()
	svc, clock := newTestService(store)

	_, err := svc.MergeExternal(ctx, "s1", []string{"3", "7"})
	require.NoError(t, err)

	// новая "страница": новый экземпляр сервиса поверх того же хранилища
	reloaded, reloadedClock := newTestService(store)
	reloadedClock.now = clock.now.Add(23 * time.Hour)

	c, err := reloaded.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, c.ServiceIDs)

	reloadedClock.now = clock.now.Add(24 * time.Hour)
	c, err = reloaded.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.ServiceIDs)
}

func TestService_WriteExtendsExpiry(t *testing.T) {
	ctx := context.Background()
	store := cartStorage.NewMemoryStore()
	svc, clock := newTestService(store)

	_, err := svc.AddService(ctx, "s1", "3")
	require.NoError(t, err)

	clock.now = clock.now.Add(20 * time.Hour)
	_, err = svc.AddService(ctx, "s1", "7")
	require.NoError(t, err)

	clock.now = clock.now.Add(10 * time.Hour)
	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, c.ServiceIDs)
}

func TestService_ClearAndValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(cartStorage.NewMemoryStore())

	_, err := svc.AddService(ctx, "s1", "3")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "s1"))

	c, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.ServiceIDs)

	_, err = svc.AddService(ctx, "", "3")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = svc.AddService(ctx, "s1", "  ")
	assert.ErrorIs(t, err, ErrInvalidServiceID)
}

func TestService_StoreErrorIsInternal(t *testing.T) {
	store := &failingStore{MemoryStore: cartStorage.NewMemoryStore(), saveErr: errors.New("disk full")}
	svc, _ := newTestService(store)

	_, err := svc.AddService(context.Background(), "s1", "3")
	assert.ErrorIs(t, err, ErrInternal)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func uniq(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, v := range ids {
		m[v] = struct{}{}
	}
	return m
}
