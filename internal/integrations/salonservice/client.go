package salonservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
)

const serviceName = "salon"

// Client клиент для работы с SalonService
type Client struct {
	gw *gateway.Client
}

// NewClient создает новый экземпляр клиента SalonService
func NewClient(baseURL string, timeout time.Duration, metrics gateway.Metrics, log gateway.Logger) *Client {
	return &Client{
		gw: gateway.NewClient(serviceName, baseURL, timeout, metrics, log),
	}
}

// GetSalon получает салон по ID
func (c *Client) GetSalon(ctx context.Context, salonID int64) (*domain.Salon, error) {
	var salon Salon
	if err := c.gw.Do(ctx, "get_salon", http.MethodGet, fmt.Sprintf("salon/%d", salonID), nil, &salon); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%d: %w", ErrSalonNotFound, salonID, err)
		}
		return nil, err
	}

	result := salon.ToDomain()
	return &result, nil
}
