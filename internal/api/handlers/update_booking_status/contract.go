package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type StaffBookingsService interface {
	ApplyTransition(ctx context.Context, staffID, bookingID int64, action domain.Action) (*domain.EnrichedBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
