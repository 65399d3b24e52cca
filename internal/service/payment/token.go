package payment

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// EncodeToken кодирует данные оплаты в токен для QR-кода (base64url от JSON)
func EncodeToken(serviceIDs []int64, salonID int64, method domain.PaymentMethod) (string, error) {
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}
	raw, err := json.Marshal(TokenPayload{
		ServiceIDs:    serviceIDs,
		SalonID:       salonID,
		PaymentMethod: string(method),
	})
	if err != nil {
		return "", fmt.Errorf("EncodeToken - marshal: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeToken разбирает токен, выпущенный EncodeToken
func DecodeToken(token string) (*TokenPayload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var payload TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &payload, nil
}
