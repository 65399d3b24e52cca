package merge_cart

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const (
	msgMissingSession     = "Thiếu mã phiên làm việc"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/merge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/merge - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req MergeCartRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/merge - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	merged, err := h.service.MergeExternal(r.Context(), sessionID, req.ServiceIDs)
	if err != nil {
		h.logger.Error("POST /cart/merge - Failed to merge: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cart/merge - Cart merged: session=%s, size=%d", sessionID, len(merged.ServiceIDs))
	handlers.RespondJSON(w, http.StatusOK, views.NewCartView(merged))
}
