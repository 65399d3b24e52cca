package reconcile_cart

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	reconcileCart "github.com/m04kA/SMC-SalonBooking/internal/usecase/reconcile_cart"
)

const (
	msgMissingSession     = "Thiếu mã phiên làm việc"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgCatalogUnavailable = "Không thể tải danh sách dịch vụ của salon"
	msgInvalidSalonID     = "mã salon không hợp lệ"
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

// Handle POST /api/v1/cart/reconcile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/reconcile - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req ReconcileRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /cart/reconcile - Invalid request body: %v", err)
		if field := handlers.FieldOf(err); field != "" {
			handlers.RespondFieldError(w, field, msgInvalidSalonID)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, reconcileCart.ErrInvalidInput):
			h.logger.Warn("POST /cart/reconcile - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reconcileCart.ErrCatalogUnavailable):
			h.logger.Error("POST /cart/reconcile - Catalog unavailable: salon_id=%d, error=%v", req.SalonID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /cart/reconcile - Failed to reconcile: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/reconcile - Cart reconciled: session=%s, salon_id=%d, dropped=%d",
		sessionID, req.SalonID, len(resp.Dropped))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
