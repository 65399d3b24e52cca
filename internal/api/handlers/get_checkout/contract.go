package get_checkout

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type GetCheckoutUseCase interface {
	Execute(ctx context.Context, attemptID, sessionID string) (*domain.CheckoutAttempt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
