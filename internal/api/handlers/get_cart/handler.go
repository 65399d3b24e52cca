package get_cart

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
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

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /cart - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	cart, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /cart - Failed to load cart: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.NewCartView(cart))
}
