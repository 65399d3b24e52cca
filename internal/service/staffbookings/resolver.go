package staffbookings

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// resolver загружает покупателей и услуги в рамках одного обновления.
// Одинаковые ID запрашиваются один раз, результат (включая ошибку) переиспользуется.
type resolver struct {
	users     UserServiceClient
	offerings OfferingServiceClient

	group singleflight.Group

	mu       sync.Mutex
	customer map[int64]userResult
	service  map[int64]serviceResult
}

type userResult struct {
	user *domain.User
	err  error
}

type serviceResult struct {
	service *domain.Service
	err     error
}

func newResolver(users UserServiceClient, offerings OfferingServiceClient) *resolver {
	return &resolver{
		users:     users,
		offerings: offerings,
		customer:  make(map[int64]userResult),
		service:   make(map[int64]serviceResult),
	}
}

func (r *resolver) user(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	if res, ok := r.customer[id]; ok {
		r.mu.Unlock()
		return res.user, res.err
	}
	r.mu.Unlock()

	v, _, _ := r.group.Do("user:"+strconv.FormatInt(id, 10), func() (interface{}, error) {
		r.mu.Lock()
		if res, ok := r.customer[id]; ok {
			r.mu.Unlock()
			return res, nil
		}
		r.mu.Unlock()

		u, err := r.users.GetUser(ctx, id)
		res := userResult{user: u, err: err}

		r.mu.Lock()
		r.customer[id] = res
		r.mu.Unlock()
		return res, nil
	})

	res := v.(userResult)
	return res.user, res.err
}

func (r *resolver) offering(ctx context.Context, id int64) (*domain.Service, error) {
	r.mu.Lock()
	if res, ok := r.service[id]; ok {
		r.mu.Unlock()
		return res.service, res.err
	}
	r.mu.Unlock()

	v, _, _ := r.group.Do("service:"+strconv.FormatInt(id, 10), func() (interface{}, error) {
		r.mu.Lock()
		if res, ok := r.service[id]; ok {
			r.mu.Unlock()
			return res, nil
		}
		r.mu.Unlock()

		s, err := r.offerings.GetService(ctx, id)
		res := serviceResult{service: s, err: err}

		r.mu.Lock()
		r.service[id] = res
		r.mu.Unlock()
		return res, nil
	})

	res := v.(serviceResult)
	return res.service, res.err
}
