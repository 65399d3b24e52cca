package start_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	startCheckout "github.com/m04kA/SMC-SalonBooking/internal/usecase/start_checkout"
)

const (
	msgMissingSession     = "Thiếu mã phiên làm việc"
	msgUnauthorized       = "Vui lòng đăng nhập để đặt lịch"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidStartTime   = "Vui lòng chọn thời gian hợp lệ"
	msgSalonNotFound      = "Không tìm thấy salon"
)

// fieldMessages сообщения пользователю по полю, не прошедшему проверку
var fieldMessages = map[string]string{
	"salonId":       "Vui lòng chọn salon",
	"startTime":     "Vui lòng chọn thời gian",
	"staffId":       "Nhân viên không hợp lệ",
	"paymentMethod": "Vui lòng chọn phương thức thanh toán",
	"customerId":    "Vui lòng đăng nhập để đặt lịch",
	"sessionId":     "Thiếu mã phiên làm việc",
}

type Handler struct {
	useCase StartCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase StartCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout - Missing user")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req StartCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(sessionID, customerID)
	if err != nil {
		h.logger.Warn("POST /checkout - Invalid start time %q: %v", req.StartTime, err)
		handlers.RespondFieldError(w, "startTime", msgInvalidStartTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		var vErr *startCheckout.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /checkout - Validation failed: field=%s, %s", vErr.Field, vErr.Message)
			handlers.RespondFieldError(w, vErr.Field, fieldMessage(vErr.Field))

		case errors.Is(err, startCheckout.ErrSalonNotFound):
			h.logger.Warn("POST /checkout - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("POST /checkout - Failed to start checkout: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Checkout started: attempt=%s, session=%s, customer=%d",
		resp.Attempt.ID, sessionID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, views.NewAttemptView(resp.Attempt, resp.Warnings))
}

func fieldMessage(field string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return msgInvalidRequestBody
}
