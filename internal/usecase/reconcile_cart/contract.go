package reconcile_cart

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/cart"
)

// OfferingServiceClient интерфейс клиента каталога услуг
type OfferingServiceClient interface {
	ListBySalon(ctx context.Context, salonID int64, categoryID *int64) ([]domain.Service, error)
}

// CartService интерфейс корзины выбранных услуг
type CartService interface {
	Reconcile(ctx context.Context, sessionID string, current, previous []domain.Service) (*cart.ReconcileResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
