package get_staff_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type StaffBookingsService interface {
	Load(ctx context.Context, staffID int64) ([]domain.EnrichedBooking, error)
	Refresh(ctx context.Context, staffID int64) ([]domain.EnrichedBooking, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальное время
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
