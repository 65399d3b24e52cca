package get_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	checkoutStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/checkout"
)

// UseCase use case получения состояния попытки оформления
type UseCase struct {
	attemptRepo AttemptRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(attemptRepo AttemptRepository, logger Logger) *UseCase {
	return &UseCase{
		attemptRepo: attemptRepo,
		logger:      logger,
	}
}

// Execute возвращает попытку, если она принадлежит сессии
func (uc *UseCase) Execute(ctx context.Context, attemptID, sessionID string) (*domain.CheckoutAttempt, error) {
	attempt, err := uc.attemptRepo.Get(ctx, attemptID)
	if err != nil {
		if errors.Is(err, checkoutStorage.ErrAttemptNotFound) {
			return nil, ErrAttemptNotFound
		}
		uc.logger.Error("GetCheckout: failed to get attempt=%s: %v", attemptID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if attempt.SessionID != sessionID {
		uc.logger.Warn("GetCheckout: attempt=%s requested by another session", attemptID)
		return nil, ErrAttemptNotFound
	}

	return attempt, nil
}
