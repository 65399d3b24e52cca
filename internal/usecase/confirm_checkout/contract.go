package confirm_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/payment"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	Create(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
}

// AttemptRepository интерфейс хранилища попыток оформления
type AttemptRepository interface {
	Get(ctx context.Context, id string) (*domain.CheckoutAttempt, error)
	Transition(ctx context.Context, id string, from domain.CheckoutPhase, fn func(a *domain.CheckoutAttempt)) (*domain.CheckoutAttempt, error)
}

// CartService интерфейс корзины выбранных услуг
type CartService interface {
	Clear(ctx context.Context, sessionID string) error
}

// PaymentConfirmer подтверждение оплаты
type PaymentConfirmer = payment.Confirmer

// Metrics интерфейс метрик исходов оплаты
type Metrics interface {
	IncPaymentOutcome(outcome string)
}

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
