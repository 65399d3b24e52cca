package reconcile_cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case сверки корзины с услугами выбранного салона
type UseCase struct {
	offeringClient OfferingServiceClient
	cart           CartService
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(offeringClient OfferingServiceClient, cart CartService, logger Logger) *UseCase {
	return &UseCase{
		offeringClient: offeringClient,
		cart:           cart,
		logger:         logger,
	}
}

// Execute удаляет из корзины услуги, которых нет у салона, и сообщает, что удалено
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	// 2. Каталог текущего салона обязателен
	current, err := uc.offeringClient.ListBySalon(ctx, req.SalonID, nil)
	if err != nil {
		uc.logger.Error("ReconcileCart: failed to get catalog of salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	// 3. Каталог предыдущего салона нужен только для названий
	var previous []domain.Service
	if req.PreviousSalonID != nil && *req.PreviousSalonID > 0 && *req.PreviousSalonID != req.SalonID {
		previous, err = uc.offeringClient.ListBySalon(ctx, *req.PreviousSalonID, nil)
		if err != nil {
			uc.logger.Warn("ReconcileCart: previous catalog of salon id=%d unavailable: %v", *req.PreviousSalonID, err)
			previous = nil
		}
	}

	// 4. Сверяем корзину
	result, err := uc.cart.Reconcile(ctx, req.SessionID, current, previous)
	if err != nil {
		uc.logger.Error("ReconcileCart: failed to reconcile cart of session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if len(result.Dropped) > 0 {
		uc.logger.Info("ReconcileCart: session=%s, salon=%d, dropped=%d", req.SessionID, req.SalonID, len(result.Dropped))
	}

	return &Response{Cart: result.Cart, Dropped: result.Dropped}, nil
}
