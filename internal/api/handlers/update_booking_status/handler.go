package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staffbookings"
)

const (
	msgInvalidStaffID     = "mã nhân viên không hợp lệ"
	msgInvalidBookingID   = "mã lịch hẹn không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgUnknownAction      = "thao tác không hợp lệ"
	msgIllegalTransition  = "Không thể thực hiện thao tác này với trạng thái hiện tại"
	msgNotFound           = "Không tìm thấy lịch hẹn"
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

// Handle PATCH /api/v1/staff/{staffId}/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - Invalid request body: %v", err)
		if field := handlers.FieldOf(err); field != "" {
			handlers.RespondFieldError(w, field, msgUnknownAction)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - %v", err)
		handlers.RespondFieldError(w, "action", msgUnknownAction)
		return
	}

	updated, err := h.service.ApplyTransition(r.Context(), staffID, bookingID, action)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIllegalTransition):
			h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - Illegal transition: booking_id=%d, action=%s",
				bookingID, action)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, staffbookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staffbookings.ErrInvalidInput):
			h.logger.Warn("PATCH /staff/{id}/bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /staff/{id}/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadGateway(w, gateway.UserMessage(err))
		}
		return
	}

	h.logger.Info("PATCH /staff/{id}/bookings/{id}/status - Status updated: booking_id=%d, status=%s",
		bookingID, updated.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, views.NewEnrichedBookingView(*updated))
}
