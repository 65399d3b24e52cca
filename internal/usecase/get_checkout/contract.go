package get_checkout

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AttemptRepository интерфейс хранилища попыток оформления
type AttemptRepository interface {
	Get(ctx context.Context, id string) (*domain.CheckoutAttempt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
