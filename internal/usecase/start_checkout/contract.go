package start_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSalon(ctx context.Context, salonID int64) (*domain.Salon, error)
}

// OfferingServiceClient интерфейс клиента каталога услуг
type OfferingServiceClient interface {
	ListBySalon(ctx context.Context, salonID int64, categoryID *int64) ([]domain.Service, error)
}

// CartService интерфейс корзины выбранных услуг
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
}

// AttemptRepository интерфейс хранилища попыток оформления
type AttemptRepository interface {
	Create(ctx context.Context, attempt *domain.CheckoutAttempt) error
}

// IDGenerator генератор идентификаторов попыток
type IDGenerator func() string

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
