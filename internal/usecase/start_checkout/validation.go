package start_checkout

import (
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest проверяет обязательные поля до любых сетевых вызовов
// и возвращает нормализованный способ оплаты
func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return "", &ValidationError{Field: "sessionId", Message: "session is required"}
	}

	if req.CustomerID <= 0 {
		return "", &ValidationError{Field: "customerId", Message: "customer is required"}
	}

	if req.SalonID <= 0 {
		return "", &ValidationError{Field: "salonId", Message: "salon is required"}
	}

	if req.StartTime == nil || req.StartTime.IsZero() {
		return "", &ValidationError{Field: "startTime", Message: "start time is required"}
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return "", &ValidationError{Field: "staffId", Message: "staffId must be positive"}
	}

	var first string
	for _, m := range req.PaymentMethods {
		if strings.TrimSpace(m) != "" {
			first = m
			break
		}
	}
	if first == "" {
		return "", &ValidationError{Field: "paymentMethod", Message: "at least one payment method is required"}
	}

	method, err := domain.NormalizePaymentMethod(first)
	if err != nil {
		return "", &ValidationError{Field: "paymentMethod", Message: err.Error()}
	}

	return method, nil
}
