package confirm_checkout

import (
	"context"

	confirmCheckout "github.com/m04kA/SMC-SalonBooking/internal/usecase/confirm_checkout"
)

type ConfirmCheckoutUseCase interface {
	Execute(ctx context.Context, req *confirmCheckout.Request) (*confirmCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
