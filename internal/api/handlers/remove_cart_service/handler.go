package remove_cart_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/cart"
)

const (
	msgMissingSession   = "Thiếu mã phiên làm việc"
	msgInvalidServiceID = "mã dịch vụ không hợp lệ"
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

// Handle DELETE /api/v1/cart/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cart/services/{id} - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	serviceID := mux.Vars(r)["serviceId"]

	updated, err := h.service.RemoveService(r.Context(), sessionID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidServiceID):
			h.logger.Warn("DELETE /cart/services/{id} - Invalid service id: %q", serviceID)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("DELETE /cart/services/{id} - Failed to remove service: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/services/{id} - Service removed: session=%s, service=%s", sessionID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, views.NewCartView(updated))
}
