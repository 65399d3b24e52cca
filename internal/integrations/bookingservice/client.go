package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
)

const serviceName = "booking"

// Client клиент для работы с BookingService
type Client struct {
	gw  *gateway.Client
	loc *time.Location
	log gateway.Logger
}

// NewClient создает новый экземпляр клиента BookingService.
// loc используется для времени без зоны в ответах сервиса.
func NewClient(baseURL string, timeout time.Duration, loc *time.Location, metrics gateway.Metrics, log gateway.Logger) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		gw:  gateway.NewClient(serviceName, baseURL, timeout, metrics, log),
		loc: loc,
		log: log,
	}
}

// Create создает бронирование в салоне. Созданное бронирование находится в PENDING.
func (c *Client) Create(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	body := NewCreateBookingRequest(req)

	var created Booking
	if err := c.gw.Do(ctx, "create", http.MethodPost, fmt.Sprintf("booking/salon/%d", req.SalonID), body, &created); err != nil {
		return nil, err
	}

	booking, err := created.ToDomain(c.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	if booking.SalonID == 0 {
		booking.SalonID = req.SalonID
	}
	return &booking, nil
}

// ListByStaff получает все бронирования сотрудника (без обогащения).
// Бронирования, которые не удалось разобрать, пропускаются с записью в лог.
func (c *Client) ListByStaff(ctx context.Context, staffID int64) ([]domain.Booking, error) {
	var raw []Booking
	if err := c.gw.Do(ctx, "list_by_staff", http.MethodGet, fmt.Sprintf("booking/staff/%d", staffID), nil, &raw); err != nil {
		return nil, err
	}

	result := make([]domain.Booking, 0, len(raw))
	for i := range raw {
		booking, err := raw[i].ToDomain(c.loc)
		if err != nil {
			c.log.Warn("ListByStaff: skipping malformed booking for staff=%d: %v", staffID, err)
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

// UpdateStatus меняет статус бронирования.
// Если сервис не вернул тело, возвращается nil без ошибки; ответ без статуса получает запрошенный статус.
func (c *Client) UpdateStatus(ctx context.Context, bookingID int64, status domain.Status) (*domain.Booking, error) {
	var updated *Booking
	err := c.gw.Do(ctx, "update_status", http.MethodPatch, fmt.Sprintf("booking/%d/status", bookingID),
		UpdateStatusRequest{Status: string(status)}, &updated)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%d: %w", ErrBookingNotFound, bookingID, err)
		}
		return nil, err
	}

	if updated == nil {
		return nil, nil
	}
	if strings.TrimSpace(updated.Status) == "" {
		updated.Status = string(status)
	}

	booking, err := updated.ToDomain(c.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}
	return &booking, nil
}

// Delete удаляет бронирование безусловно, в обход проверок статуса
func (c *Client) Delete(ctx context.Context, bookingID int64) error {
	if err := c.gw.Do(ctx, "delete", http.MethodDelete, fmt.Sprintf("booking/%d", bookingID), nil, nil); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return fmt.Errorf("%w: id=%d: %w", ErrBookingNotFound, bookingID, err)
		}
		return err
	}
	return nil
}
