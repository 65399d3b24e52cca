package start_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	salonClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
	"github.com/m04kA/SMC-SalonBooking/internal/service/invoice"
)

// UseCase use case начала оформления: счет формируется и ждет подтверждения пользователем
type UseCase struct {
	salonClient    SalonServiceClient
	offeringClient OfferingServiceClient
	cart           CartService
	attemptRepo    AttemptRepository
	newID          IDGenerator
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonClient SalonServiceClient,
	offeringClient OfferingServiceClient,
	cart CartService,
	attemptRepo AttemptRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonClient:    salonClient,
		offeringClient: offeringClient,
		cart:           cart,
		attemptRepo:    attemptRepo,
		newID:          uuid.NewString,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case начала оформления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartCheckout: session=%s, customer=%d, salon=%d", req.SessionID, req.CustomerID, req.SalonID)

	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("StartCheckout: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон
	salon, err := uc.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("StartCheckout: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("StartCheckout: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %w", ErrInternal, err)
	}

	// 3. Получаем каталог услуг салона
	catalog, err := uc.offeringClient.ListBySalon(ctx, req.SalonID, nil)
	if err != nil {
		uc.logger.Error("StartCheckout: failed to get catalog of salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get catalog: %w", ErrInternal, err)
	}

	// 4. Получаем корзину сессии
	cart, err := uc.cart.Get(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("StartCheckout: failed to get cart of session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get cart: %v", ErrInternal, err)
	}

	// 5. Формируем счет
	inv := invoice.Build(cart.ServiceIDs, catalog, req.StartTime)

	warnings := make([]string, 0)
	if inv.IsEmpty() {
		// пустой выбор допускается, пользователь получает предупреждение
		uc.logger.Warn("StartCheckout: session=%s has no services for salon id=%d", req.SessionID, req.SalonID)
		warnings = append(warnings, WarningEmptySelection)
	}
	if len(inv.MissingServiceIDs) > 0 {
		uc.logger.Warn("StartCheckout: services %v are not offered by salon id=%d", inv.MissingServiceIDs, req.SalonID)
		warnings = append(warnings, WarningMissingServices)
	}

	// 6. Регистрируем попытку оформления
	now := uc.timeProvider.Now()
	attempt := &domain.CheckoutAttempt{
		ID:            uc.newID(),
		SessionID:     req.SessionID,
		CustomerID:    req.CustomerID,
		SalonID:       salon.ID,
		SalonName:     salon.Name,
		StaffID:       req.StaffID,
		StartTime:     *req.StartTime,
		PaymentMethod: method,
		Invoice:       inv,
		Phase:         domain.PhaseAwaitingInvoiceConfirmation,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if attempt.SalonID == 0 {
		attempt.SalonID = req.SalonID
	}

	if err := uc.attemptRepo.Create(ctx, attempt); err != nil {
		uc.logger.Error("StartCheckout: failed to save attempt: %v", err)
		return nil, fmt.Errorf("%w: failed to save attempt: %v", ErrInternal, err)
	}

	uc.logger.Info("StartCheckout: attempt=%s created, total=%.0f, duration=%dm, method=%s",
		attempt.ID, inv.TotalPrice, inv.TotalDurationMinutes, method)

	return &Response{Attempt: attempt, Warnings: warnings}, nil
}
