package add_cart_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/cart"
)

const (
	msgMissingSession     = "Thiếu mã phiên làm việc"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidServiceID   = "mã dịch vụ không hợp lệ"
	msgAlreadyInCart      = "Dịch vụ đã có trong danh sách"
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

// Handle POST /api/v1/cart/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/services - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req AddServiceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /cart/services - Invalid request body: %v", err)
		if field := handlers.FieldOf(err); field != "" {
			handlers.RespondFieldError(w, field, msgInvalidServiceID)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.AddService(r.Context(), sessionID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrAlreadyInCart):
			h.logger.Warn("POST /cart/services - Already in cart: session=%s, service=%s", sessionID, req.ServiceID)
			handlers.RespondJSON(w, http.StatusOK, AddServiceResponse{
				Cart:    views.NewCartView(updated),
				Warning: msgAlreadyInCart,
			})

		case errors.Is(err, cart.ErrInvalidServiceID):
			h.logger.Warn("POST /cart/services - Invalid service id: %q", req.ServiceID)
			handlers.RespondFieldError(w, "serviceId", msgInvalidServiceID)

		default:
			h.logger.Error("POST /cart/services - Failed to add service: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/services - Service added: session=%s, service=%s", sessionID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, AddServiceResponse{Cart: views.NewCartView(updated)})
}
