package add_cart_service

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type CartService interface {
	AddService(ctx context.Context, sessionID, serviceID string) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
