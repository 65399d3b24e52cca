package preview_invoice

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	previewInvoice "github.com/m04kA/SMC-SalonBooking/internal/usecase/preview_invoice"
)

const (
	msgMissingSession     = "Thiếu mã phiên làm việc"
	msgInvalidSalonID     = "mã salon không hợp lệ"
	msgInvalidStartTime   = "thời gian bắt đầu không hợp lệ"
	msgCatalogUnavailable = "Không thể tải danh sách dịch vụ của salon"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/invoice?startTime=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/invoice - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	salonID, err := handlers.PathInt64(r, "salonId")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/invoice - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	var startTime *time.Time
	if raw := r.URL.Query().Get("startTime"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/invoice - Invalid start time %q: %v", raw, err)
			handlers.RespondFieldError(w, "startTime", msgInvalidStartTime)
			return
		}
		startTime = &parsed
	}

	invoice, err := h.useCase.Execute(r.Context(), sessionID, salonID, startTime)
	if err != nil {
		switch {
		case errors.Is(err, previewInvoice.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/invoice - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSalonID)

		case errors.Is(err, previewInvoice.ErrCatalogUnavailable):
			h.logger.Error("GET /salons/{id}/invoice - Catalog unavailable: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /salons/{id}/invoice - Failed to build invoice: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.NewInvoiceView(*invoice))
}
