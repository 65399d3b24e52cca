package start_checkout

import (
	"time"

	startCheckout "github.com/m04kA/SMC-SalonBooking/internal/usecase/start_checkout"
)

// StartCheckoutRequest HTTP request model
type StartCheckoutRequest struct {
	SalonID        int64    `json:"salonId"`
	StaffID        *int64   `json:"staffId,omitempty"`
	StartTime      string   `json:"startTime"` // RFC3339
	PaymentMethod  string   `json:"paymentMethod,omitempty"`
	PaymentMethods []string `json:"paymentMethods,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустое время начала передается как nil, его проверяет use case.
func (r *StartCheckoutRequest) ToUseCaseRequest(sessionID string, customerID int64) (*startCheckout.Request, error) {
	var startTime *time.Time
	if r.StartTime != "" {
		parsed, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = &parsed
	}

	methods := r.PaymentMethods
	if r.PaymentMethod != "" {
		methods = append([]string{r.PaymentMethod}, methods...)
	}

	return &startCheckout.Request{
		SessionID:      sessionID,
		CustomerID:     customerID,
		SalonID:        r.SalonID,
		StaffID:        r.StaffID,
		StartTime:      startTime,
		PaymentMethods: methods,
	}, nil
}
