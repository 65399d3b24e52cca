package delete_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staffbookings"
)

const (
	msgInvalidStaffID   = "mã nhân viên không hợp lệ"
	msgInvalidBookingID = "mã lịch hẹn không hợp lệ"
	msgNotFound         = "Không tìm thấy lịch hẹn"
)

type Handler struct {
	service StaffBookingsService
	logger  Logger
}

func NewHandler(service StaffBookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/staff/{staffId}/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/bookings/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), staffID, bookingID); err != nil {
		switch {
		case errors.Is(err, staffbookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /staff/{id}/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/{id}/bookings/{id} - Failed to delete booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadGateway(w, gateway.UserMessage(err))
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/bookings/{id} - Booking deleted: staff_id=%d, booking_id=%d", staffID, bookingID)
	w.WriteHeader(http.StatusNoContent)
}
