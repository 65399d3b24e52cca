package confirm_checkout

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Request модель запроса на подтверждение счета
type Request struct {
	AttemptID string // ID попытки оформления
	SessionID string // ID сессии браузера
}

// Response модель ответа: попытка в PAYMENT_PENDING с созданной записью
type Response struct {
	Attempt *domain.CheckoutAttempt
}

// Исходы оплаты для метрик
const (
	outcomeSucceeded     = "succeeded"
	outcomeDeclined      = "declined"
	outcomeBookingFailed = "booking_failed"
	outcomeError         = "error"
)

// reasonStoreFailed причина отказа, когда запись создана, но попытку не удалось обновить
const reasonStoreFailed = "Không thể lưu kết quả đặt lịch, vui lòng thử lại"
