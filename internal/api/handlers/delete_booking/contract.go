package delete_booking

import "context"

type StaffBookingsService interface {
	Delete(ctx context.Context, staffID, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
