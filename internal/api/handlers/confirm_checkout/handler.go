package confirm_checkout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	confirmCheckout "github.com/m04kA/SMC-SalonBooking/internal/usecase/confirm_checkout"
)

const (
	msgMissingSession   = "Thiếu mã phiên làm việc"
	msgAttemptNotFound  = "Không tìm thấy đơn đặt lịch"
	msgAlreadyConfirmed = "Hóa đơn đã được xác nhận"
	msgInvalidAttemptID = "mã đơn đặt lịch không hợp lệ"
)

type Handler struct {
	useCase ConfirmCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/{attemptId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout/{id}/confirm - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	attemptID := mux.Vars(r)["attemptId"]

	resp, err := h.useCase.Execute(r.Context(), &confirmCheckout.Request{
		AttemptID: attemptID,
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout/{id}/confirm - Invalid attempt id: %q", attemptID)
			handlers.RespondBadRequest(w, msgInvalidAttemptID)

		case errors.Is(err, confirmCheckout.ErrAttemptNotFound):
			h.logger.Warn("POST /checkout/{id}/confirm - Attempt not found: attempt=%s", attemptID)
			handlers.RespondNotFound(w, msgAttemptNotFound)

		case errors.Is(err, confirmCheckout.ErrAlreadyConfirmed):
			h.logger.Warn("POST /checkout/{id}/confirm - Already confirmed: attempt=%s", attemptID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmCheckout.ErrBookingFailed):
			h.logger.Warn("POST /checkout/{id}/confirm - Booking rejected: attempt=%s, error=%v", attemptID, err)
			handlers.RespondBadGateway(w, gateway.UserMessage(err))

		default:
			h.logger.Error("POST /checkout/{id}/confirm - Failed to confirm: attempt=%s, error=%v", attemptID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/{id}/confirm - Payment pending: attempt=%s", attemptID)
	handlers.RespondJSON(w, http.StatusAccepted, views.NewAttemptView(resp.Attempt, nil))
}
