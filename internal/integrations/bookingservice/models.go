package bookingservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// isoFormat формат времени запроса, совпадающий с Date.toISOString()
const isoFormat = "2006-01-02T15:04:05.000Z"

// zonelessFormats форматы времени без зоны, которые отдает сервис бронирований
var zonelessFormats = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// CreateBookingRequest тело POST booking/salon/{salonId}
type CreateBookingRequest struct {
	CustomerID    int64   `json:"customerId"`
	StartTime     string  `json:"startTime"`
	ServiceIDs    []int64 `json:"serviceIds"`
	StaffID       *int64  `json:"staffId,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
}

// UpdateStatusRequest тело PATCH booking/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Booking модель бронирования из BookingService
type Booking struct {
	ID            int64    `json:"id"`
	CustomerID    int64    `json:"customerId"`
	SalonID       int64    `json:"salonId"`
	StaffID       *int64   `json:"staffId"`
	ServiceIDs    []int64  `json:"serviceIds"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Status        string   `json:"status"`
	PaymentMethod string   `json:"paymentMethod"`
	TotalPrice    *float64 `json:"totalPrice"`
	Note          *string  `json:"note"`
	Rating        *int     `json:"rating"`
}

// NewCreateBookingRequest формирует тело запроса из доменной модели
func NewCreateBookingRequest(req domain.BookingRequest) CreateBookingRequest {
	serviceIDs := req.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}
	return CreateBookingRequest{
		CustomerID:    req.CustomerID,
		StartTime:     req.StartTime.UTC().Format(isoFormat),
		ServiceIDs:    serviceIDs,
		StaffID:       req.StaffID,
		PaymentMethod: string(req.PaymentMethod),
	}
}

// ToDomain конвертирует модель BookingService в доменную.
// Время без зоны трактуется в loc.
func (b *Booking) ToDomain(loc *time.Location) (domain.Booking, error) {
	start, err := parseTime(b.StartTime, loc)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking id=%d: startTime: %w", b.ID, err)
	}
	end, err := parseTime(b.EndTime, loc)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking id=%d: endTime: %w", b.ID, err)
	}

	serviceIDs := b.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	booking := domain.Booking{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		SalonID:       b.SalonID,
		StaffID:       b.StaffID,
		ServiceIDs:    serviceIDs,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.NormalizeStatus(b.Status),
		PaymentMethod: domain.PaymentMethod(b.PaymentMethod),
		Note:          b.Note,
		Rating:        b.Rating,
	}
	if b.TotalPrice != nil {
		booking.TotalPrice = *b.TotalPrice
	}

	return booking, nil
}

// parseTime разбирает RFC3339 или время без зоны; пустая строка дает нулевое время
func parseTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range zonelessFormats {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time format %q", raw)
}
