package staffbookings

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	ListByStaff(ctx context.Context, staffID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.Status) (*domain.Booking, error)
	Delete(ctx context.Context, bookingID int64) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// OfferingServiceClient интерфейс клиента каталога услуг
type OfferingServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
}

// Metrics интерфейс метрик деградации обогащения
type Metrics interface {
	IncEnrichmentDegraded(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
