package preview_invoice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/invoice"
)

// UseCase use case предварительного расчета счета по корзине
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

// Execute считает счет корзины сессии для салона; startTime может быть не задан
func (uc *UseCase) Execute(ctx context.Context, sessionID string, salonID int64, startTime *time.Time) (*domain.Invoice, error) {
	if strings.TrimSpace(sessionID) == "" || salonID <= 0 {
		return nil, fmt.Errorf("%w: sessionID and salonID are required", ErrInvalidInput)
	}

	catalog, err := uc.offeringClient.ListBySalon(ctx, salonID, nil)
	if err != nil {
		uc.logger.Error("PreviewInvoice: failed to get catalog of salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	cart, err := uc.cart.Get(ctx, sessionID)
	if err != nil {
		uc.logger.Error("PreviewInvoice: failed to get cart of session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	inv := invoice.Build(cart.ServiceIDs, catalog, startTime)
	if inv.IsEmpty() {
		uc.logger.Warn("PreviewInvoice: session=%s has no services for salon id=%d", sessionID, salonID)
	}
	return &inv, nil
}
