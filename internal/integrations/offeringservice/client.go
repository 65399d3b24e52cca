package offeringservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
)

const serviceName = "service_offering"

// Client клиент для работы с каталогом услуг
type Client struct {
	gw *gateway.Client
}

// NewClient создает новый экземпляр клиента каталога услуг
func NewClient(baseURL string, timeout time.Duration, metrics gateway.Metrics, log gateway.Logger) *Client {
	return &Client{
		gw: gateway.NewClient(serviceName, baseURL, timeout, metrics, log),
	}
}

// ListBySalon получает услуги салона, опционально только одной категории
func (c *Client) ListBySalon(ctx context.Context, salonID int64, categoryID *int64) ([]domain.Service, error) {
	path := fmt.Sprintf("service-offering/salon/%d", salonID)
	if categoryID != nil {
		path += "?" + url.Values{"categoryId": {strconv.FormatInt(*categoryID, 10)}}.Encode()
	}

	var offerings []ServiceOffering
	if err := c.gw.Do(ctx, "list_by_salon", http.MethodGet, path, nil, &offerings); err != nil {
		return nil, err
	}

	result := make([]domain.Service, 0, len(offerings))
	for i := range offerings {
		svc := offerings[i].ToDomain()
		if svc.SalonID == 0 {
			svc.SalonID = salonID
		}
		result = append(result, svc)
	}
	return result, nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	var offering ServiceOffering
	if err := c.gw.Do(ctx, "get_service", http.MethodGet, fmt.Sprintf("service-offering/%d", serviceID), nil, &offering); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%d: %w", ErrServiceNotFound, serviceID, err)
		}
		return nil, err
	}

	result := offering.ToDomain()
	if result.ID == 0 {
		result.ID = serviceID
	}
	return &result, nil
}
