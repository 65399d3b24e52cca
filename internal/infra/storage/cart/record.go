package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// record формат хранения корзины: JSON-массив строковых ID услуг и срок жизни
type record struct {
	ServiceIDs []string  `json:"serviceIds"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func encodeServiceIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return payload, nil
}

func decodeServiceIDs(raw []byte) ([]string, error) {
	ids := make([]string, 0)
	if len(raw) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func cloneCart(c *domain.Cart) *domain.Cart {
	ids := make([]string, len(c.ServiceIDs))
	copy(ids, c.ServiceIDs)
	return &domain.Cart{
		SessionID:  c.SessionID,
		ServiceIDs: ids,
		ExpiresAt:  c.ExpiresAt,
	}
}
