package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func newTestRedisStore(t *testing.T, now time.Time) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	store.now = func() time.Time { return now }
	return store, mr
}

func TestRedisStore_SaveSetsRemainingTTL(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	store, mr := newTestRedisStore(t, now)

	cart := &domain.Cart{SessionID: "s1", ServiceIDs: []string{"5"}, ExpiresAt: now.Add(90 * time.Minute)}
	require.NoError(t, store.Save(context.Background(), cart))

	assert.True(t, mr.Exists("cart:s1"))
	assert.Equal(t, 90*time.Minute, mr.TTL("cart:s1"))

	mr.FastForward(91 * time.Minute)
	_, err := store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRedisStore_SaveExpiredDeletesKey(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	store, mr := newTestRedisStore(t, now)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Cart{SessionID: "s1", ServiceIDs: []string{"5"}, ExpiresAt: now.Add(time.Hour)}))
	require.True(t, mr.Exists("cart:s1"))

	require.NoError(t, store.Save(ctx, &domain.Cart{SessionID: "s1", ServiceIDs: []string{"5", "6"}, ExpiresAt: now.Add(-time.Second)}))

	assert.False(t, mr.Exists("cart:s1"))
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Now())

	got, err := store.Get(context.Background(), "absent")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	store, _ := newTestRedisStore(t, now)
	ctx := context.Background()
	expires := now.Add(domain.CartTTL)

	require.NoError(t, store.Save(ctx, &domain.Cart{SessionID: "s1", ServiceIDs: []string{"7", "5"}, ExpiresAt: expires}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, []string{"7", "5"}, got.ServiceIDs)
	assert.True(t, expires.Equal(got.ExpiresAt))

	require.NoError(t, store.Save(ctx, &domain.Cart{SessionID: "s1", ExpiresAt: expires}))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.ServiceIDs)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}
