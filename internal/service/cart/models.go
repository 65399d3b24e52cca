package cart

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ReconcileResult результат сверки корзины с каталогом салона
type ReconcileResult struct {
	Cart    *domain.Cart
	Dropped []domain.DroppedEntry
}
