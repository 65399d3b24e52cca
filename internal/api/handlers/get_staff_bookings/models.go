package get_staff_bookings

import "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"

// StaffBookingsResponse HTTP response model
type StaffBookingsResponse struct {
	Bookings []views.EnrichedBookingView `json:"bookings"`
	Total    int                         `json:"total"`    // записей в коллекции сотрудника
	Filtered int                         `json:"filtered"` // записей после фильтров
}
