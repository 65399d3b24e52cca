package preview_invoice

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// OfferingServiceClient интерфейс клиента каталога услуг
type OfferingServiceClient interface {
	ListBySalon(ctx context.Context, salonID int64, categoryID *int64) ([]domain.Service, error)
}

// CartService интерфейс корзины выбранных услуг
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
