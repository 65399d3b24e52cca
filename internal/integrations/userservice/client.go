package userservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
)

const serviceName = "user"

// Client клиент для работы с UserService
type Client struct {
	gw  *gateway.Client
	log gateway.Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, metrics gateway.Metrics, log gateway.Logger) *Client {
	return &Client{
		gw:  gateway.NewClient(serviceName, baseURL, timeout, metrics, log),
		log: log,
	}
}

// GetUser получает профиль пользователя (клиента или сотрудника) по ID
func (c *Client) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var user User
	if err := c.gw.Do(ctx, "get_user", http.MethodGet, fmt.Sprintf("user/%d", userID), nil, &user); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%d: %w", ErrUserNotFound, userID, err)
		}
		return nil, err
	}

	result := user.ToDomain()
	if result.ID == 0 {
		result.ID = userID
	}
	return &result, nil
}
