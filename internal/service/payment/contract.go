package payment

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Confirmer разрешает ожидающую оплату попытки оформления.
// Реальная интеграция с платежным шлюзом (webhook или опрос статуса транзакции) подключается через этот интерфейс.
type Confirmer interface {
	Confirm(ctx context.Context, attempt *domain.CheckoutAttempt) (*Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
