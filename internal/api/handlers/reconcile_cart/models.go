package reconcile_cart

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reconcileCart "github.com/m04kA/SMC-SalonBooking/internal/usecase/reconcile_cart"
)

// ReconcileRequest HTTP request model
type ReconcileRequest struct {
	SalonID         int64  `json:"salonId" validate:"required,gt=0"`
	PreviousSalonID *int64 `json:"previousSalonId,omitempty" validate:"omitempty,gt=0"`
}

// DroppedView услуга, удаленная из корзины
type DroppedView struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
}

// ReconcileResponse HTTP response model
type ReconcileResponse struct {
	Cart    views.CartView `json:"cart"`
	Dropped []DroppedView  `json:"dropped"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *ReconcileRequest) ToUseCaseRequest(sessionID string) *reconcileCart.Request {
	return &reconcileCart.Request{
		SessionID:       sessionID,
		SalonID:         r.SalonID,
		PreviousSalonID: r.PreviousSalonID,
	}
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *reconcileCart.Response) ReconcileResponse {
	return ReconcileResponse{
		Cart:    views.NewCartView(resp.Cart),
		Dropped: toDroppedViews(resp.Dropped),
	}
}

func toDroppedViews(entries []domain.DroppedEntry) []DroppedView {
	result := make([]DroppedView, 0, len(entries))
	for _, e := range entries {
		result = append(result, DroppedView{ServiceID: e.ServiceID, Name: e.Name})
	}
	return result
}
