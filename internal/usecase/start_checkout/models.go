package start_checkout

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на начало оформления
type Request struct {
	SessionID      string     // ID сессии браузера, владельца корзины
	CustomerID     int64      // ID покупателя
	SalonID        int64      // ID выбранного салона
	StaffID        *int64     // ID мастера (опционально)
	StartTime      *time.Time // Время начала записи
	PaymentMethods []string   // Выбранные способы оплаты, используется первый
}

// Response модель ответа с зарегистрированной попыткой
type Response struct {
	Attempt  *domain.CheckoutAttempt
	Warnings []string // предупреждения для показа пользователю
}

// Предупреждения
const (
	WarningEmptySelection  = "empty_selection"
	WarningMissingServices = "missing_services"
)
