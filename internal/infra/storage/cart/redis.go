package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const redisKeyPrefix = "cart:"

// RedisStore хранение корзин в Redis.
// TTL ключа равен оставшемуся сроку жизни корзины, поэтому истекшие корзины Redis удаляет сам.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore создает хранилище корзин поверх redis-клиента
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrExecQuery, err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: Get - decode cart: %v", ErrScanRow, err)
	}
	if rec.ServiceIDs == nil {
		rec.ServiceIDs = []string{}
	}

	return &domain.Cart{
		SessionID:  sessionID,
		ServiceIDs: rec.ServiceIDs,
		ExpiresAt:  rec.ExpiresAt,
	}, nil
}

func (s *RedisStore) Save(ctx context.Context, cart *domain.Cart) error {
	ttl := cart.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, cart.SessionID)
	}

	ids := cart.ServiceIDs
	if ids == nil {
		ids = []string{}
	}
	payload, err := json.Marshal(record{ServiceIDs: ids, ExpiresAt: cart.ExpiresAt})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+cart.SessionID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis set: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrExecQuery, err)
	}
	return nil
}
