package clear_cart

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const msgMissingSession = "Thiếu mã phiên làm việc"

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

// Handle DELETE /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cart - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /cart - Failed to clear cart: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart - Cart cleared: session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
