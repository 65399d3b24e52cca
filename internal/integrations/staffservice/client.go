package staffservice

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
)

const serviceName = "staff"

// Client клиент для работы со StaffService
type Client struct {
	gw *gateway.Client
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, metrics gateway.Metrics, log gateway.Logger) *Client {
	return &Client{
		gw: gateway.NewClient(serviceName, baseURL, timeout, metrics, log),
	}
}

// ListStaff получает список всех сотрудников
func (c *Client) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	var staff []Staff
	if err := c.gw.Do(ctx, "list_staff", http.MethodGet, "staff", nil, &staff); err != nil {
		return nil, err
	}

	result := make([]domain.Staff, 0, len(staff))
	for i := range staff {
		result = append(result, staff[i].ToDomain())
	}
	return result, nil
}
