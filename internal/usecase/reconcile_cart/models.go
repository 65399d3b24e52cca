package reconcile_cart

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Request модель запроса на сверку корзины с каталогом салона
type Request struct {
	SessionID       string
	SalonID         int64  // текущий выбранный салон
	PreviousSalonID *int64 // салон, выбранный до смены (для названий удаленных услуг)
}

// Response модель ответа со сверенной корзиной
type Response struct {
	Cart    *domain.Cart
	Dropped []domain.DroppedEntry
}
