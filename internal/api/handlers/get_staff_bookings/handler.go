package get_staff_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staffbookings"
)

const (
	msgInvalidStaffID = "mã nhân viên không hợp lệ"
	msgInvalidStatus  = "trạng thái không hợp lệ"
	msgInvalidRefresh = "tham số refresh không hợp lệ"
)

type Handler struct {
	service      StaffBookingsService
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

func NewHandler(service StaffBookingsService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		service:      service,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/bookings?date=&status=&from=&to=&refresh=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	status, err := schedule.ParseStatusFilter(query.Get("status"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid status filter: %v", err)
		handlers.RespondFieldError(w, "status", msgInvalidStatus)
		return
	}

	refresh := false
	if raw := query.Get("refresh"); raw != "" {
		refresh, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/bookings - Invalid refresh flag %q", raw)
			handlers.RespondFieldError(w, "refresh", msgInvalidRefresh)
			return
		}
	}

	var bookings []domain.EnrichedBooking
	if refresh {
		bookings, err = h.service.Refresh(r.Context(), staffID)
	} else {
		bookings, err = h.service.Load(r.Context(), staffID)
	}
	if err != nil {
		switch {
		case errors.Is(err, staffbookings.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		case errors.Is(err, staffbookings.ErrFetchFailed):
			h.logger.Error("GET /staff/{id}/bookings - Failed to fetch bookings: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadGateway(w, gateway.UserMessage(err))

		default:
			h.logger.Error("GET /staff/{id}/bookings - Failed to load bookings: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filtered := schedule.Filter(bookings, schedule.Criteria{
		Date:     schedule.ParseDateFilter(query.Get("date")),
		Status:   status,
		From:     query.Get("from"),
		To:       query.Get("to"),
		Now:      h.timeProvider.Now(),
		Location: h.location,
	})

	handlers.RespondJSON(w, http.StatusOK, StaffBookingsResponse{
		Bookings: views.NewEnrichedBookingViews(filtered),
		Total:    len(bookings),
		Filtered: len(filtered),
	})
}
