package merge_cart

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type CartService interface {
	MergeExternal(ctx context.Context, sessionID string, serviceIDs []string) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
