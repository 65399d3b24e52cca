package add_cart_service

import "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
}

// AddServiceResponse HTTP response model
type AddServiceResponse struct {
	Cart    views.CartView `json:"cart"`
	Warning string         `json:"warning,omitempty"`
}
