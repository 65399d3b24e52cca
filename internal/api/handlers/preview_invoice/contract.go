package preview_invoice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type UseCase interface {
	Execute(ctx context.Context, sessionID string, salonID int64, startTime *time.Time) (*domain.Invoice, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
