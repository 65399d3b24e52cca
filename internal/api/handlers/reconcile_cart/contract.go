package reconcile_cart

import (
	"context"

	reconcileCart "github.com/m04kA/SMC-SalonBooking/internal/usecase/reconcile_cart"
)

type UseCase interface {
	Execute(ctx context.Context, req *reconcileCart.Request) (*reconcileCart.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
