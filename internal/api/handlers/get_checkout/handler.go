package get_checkout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	getCheckout "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_checkout"
)

const (
	msgMissingSession  = "Thiếu mã phiên làm việc"
	msgAttemptNotFound = "Không tìm thấy đơn đặt lịch"
)

type Handler struct {
	useCase GetCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase GetCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkout/{attemptId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /checkout/{id} - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	attemptID := mux.Vars(r)["attemptId"]

	attempt, err := h.useCase.Execute(r.Context(), attemptID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, getCheckout.ErrAttemptNotFound):
			h.logger.Warn("GET /checkout/{id} - Attempt not found: attempt=%s", attemptID)
			handlers.RespondNotFound(w, msgAttemptNotFound)

		default:
			h.logger.Error("GET /checkout/{id} - Failed to get attempt: attempt=%s, error=%v", attemptID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.NewAttemptView(attempt, nil))
}
