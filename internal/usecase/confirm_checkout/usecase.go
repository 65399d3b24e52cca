package confirm_checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	checkoutStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/checkout"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	"github.com/m04kA/SMC-SalonBooking/internal/service/payment"
)

// UseCase use case подтверждения счета: создание записи и ожидание оплаты
type UseCase struct {
	bookingClient BookingServiceClient
	attemptRepo   AttemptRepository
	cart          CartService
	confirmer     PaymentConfirmer
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger

	wg sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingClient BookingServiceClient,
	attemptRepo AttemptRepository,
	cart CartService,
	confirmer PaymentConfirmer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingClient: bookingClient,
		attemptRepo:   attemptRepo,
		cart:          cart,
		confirmer:     confirmer,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения счета.
// Ошибка сервиса бронирований сразу переводит попытку в FAILED без повторов, корзина не трогается.
// После создания записи результат оплаты разрешается асинхронно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmCheckout: attempt=%s, session=%s", req.AttemptID, req.SessionID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.AttemptID) == "" || strings.TrimSpace(req.SessionID) == "" {
		return nil, fmt.Errorf("%w: attemptID and sessionID are required", ErrInvalidInput)
	}

	// 2. Проверяем владельца попытки
	attempt, err := uc.attemptRepo.Get(ctx, req.AttemptID)
	if err != nil {
		if errors.Is(err, checkoutStorage.ErrAttemptNotFound) {
			return nil, ErrAttemptNotFound
		}
		uc.logger.Error("ConfirmCheckout: failed to get attempt=%s: %v", req.AttemptID, err)
		return nil, fmt.Errorf("%w: failed to get attempt: %v", ErrInternal, err)
	}
	if attempt.SessionID != req.SessionID {
		uc.logger.Warn("ConfirmCheckout: attempt=%s belongs to another session", req.AttemptID)
		return nil, ErrAttemptNotFound
	}

	// 3. Занимаем попытку: AWAITING_INVOICE_CONFIRMATION -> PAYMENT_PENDING
	attempt, err = uc.attemptRepo.Transition(ctx, req.AttemptID, domain.PhaseAwaitingInvoiceConfirmation, func(a *domain.CheckoutAttempt) {
		a.Phase = domain.PhasePaymentPending
		a.UpdatedAt = uc.timeProvider.Now()
	})
	if err != nil {
		if errors.Is(err, domain.ErrIllegalTransition) {
			uc.logger.Warn("ConfirmCheckout: attempt=%s is not awaiting confirmation", req.AttemptID)
			return nil, ErrAlreadyConfirmed
		}
		uc.logger.Error("ConfirmCheckout: failed to claim attempt=%s: %v", req.AttemptID, err)
		return nil, fmt.Errorf("%w: failed to claim attempt: %v", ErrInternal, err)
	}

	// 4. Создаем запись в сервисе бронирований
	booking, err := uc.bookingClient.Create(ctx, domain.BookingRequest{
		SalonID:       attempt.SalonID,
		CustomerID:    attempt.CustomerID,
		StartTime:     attempt.StartTime,
		ServiceIDs:    attempt.Invoice.ServiceIDs(),
		StaffID:       attempt.StaffID,
		PaymentMethod: attempt.PaymentMethod,
	})
	if err != nil {
		reason := gateway.UserMessage(err)
		uc.logger.Error("ConfirmCheckout: booking creation failed for attempt=%s: %v", attempt.ID, err)
		uc.finish(context.WithoutCancel(ctx), attempt.ID, domain.PhaseFailed, reason)
		uc.metrics.IncPaymentOutcome(outcomeBookingFailed)
		return nil, fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	// 5. Дополняем запись данными счета, если сервис их не вернул
	backfill(booking, attempt)

	// 6. Формируем платежный токен
	token, err := payment.EncodeToken(booking.ServiceIDs, attempt.SalonID, attempt.PaymentMethod)
	if err != nil {
		uc.logger.Error("ConfirmCheckout: failed to encode payment token for attempt=%s: %v", attempt.ID, err)
	}

	attempt, err = uc.attemptRepo.Transition(ctx, attempt.ID, domain.PhasePaymentPending, func(a *domain.CheckoutAttempt) {
		a.Booking = booking
		a.PaymentToken = token
		a.UpdatedAt = uc.timeProvider.Now()
	})
	if err != nil {
		// запись уже создана в сервисе бронирований, попытка завершается с ее ID
		uc.logger.Error("ConfirmCheckout: failed to store booking id=%d for attempt=%s, booking left pending: %v", booking.ID, req.AttemptID, err)
		uc.fail(context.WithoutCancel(ctx), req.AttemptID, booking, reasonStoreFailed)
		uc.metrics.IncPaymentOutcome(outcomeError)
		return nil, fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmCheckout: booking id=%d created for attempt=%s, waiting for payment", booking.ID, attempt.ID)

	// 7. Разрешаем оплату асинхронно; запрос клиента не отменяет ожидание
	pending := *attempt
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.resolve(context.WithoutCancel(ctx), &pending)
	}()

	return &Response{Attempt: attempt}, nil
}

// Wait дожидается завершения всех ожидающих оплат
func (uc *UseCase) Wait() {
	uc.wg.Wait()
}

// resolve ждет исход оплаты и завершает попытку
func (uc *UseCase) resolve(ctx context.Context, attempt *domain.CheckoutAttempt) {
	result, err := uc.confirmer.Confirm(ctx, attempt)
	if err != nil {
		uc.logger.Error("resolve: payment confirmation failed for attempt=%s: %v", attempt.ID, err)
		uc.finish(ctx, attempt.ID, domain.PhaseFailed, gateway.UserMessage(err))
		uc.metrics.IncPaymentOutcome(outcomeError)
		return
	}

	if !result.Succeeded {
		// запись остается PENDING на стороне сервиса, корзина сохраняется для повторной попытки
		uc.logger.Warn("resolve: payment declined for attempt=%s, booking id=%d stays pending", attempt.ID, attempt.Booking.ID)
		uc.finish(ctx, attempt.ID, domain.PhaseFailed, result.Reason)
		uc.metrics.IncPaymentOutcome(outcomeDeclined)
		return
	}

	if err := uc.cart.Clear(ctx, attempt.SessionID); err != nil {
		uc.logger.Error("resolve: failed to clear cart of session=%s: %v", attempt.SessionID, err)
	}
	uc.finish(ctx, attempt.ID, domain.PhaseSucceeded, "")
	uc.metrics.IncPaymentOutcome(outcomeSucceeded)
	uc.logger.Info("resolve: payment succeeded for attempt=%s, booking id=%d", attempt.ID, attempt.Booking.ID)
}

// finish переводит попытку из PAYMENT_PENDING в конечную фазу
func (uc *UseCase) finish(ctx context.Context, attemptID string, phase domain.CheckoutPhase, reason string) {
	_, err := uc.attemptRepo.Transition(ctx, attemptID, domain.PhasePaymentPending, func(a *domain.CheckoutAttempt) {
		a.Phase = phase
		a.FailureReason = reason
		a.UpdatedAt = uc.timeProvider.Now()
	})
	if err != nil {
		uc.logger.Error("finish: failed to move attempt=%s to %s: %v", attemptID, phase, err)
	}
}

// fail переводит попытку из PAYMENT_PENDING в FAILED, сохраняя созданную запись
func (uc *UseCase) fail(ctx context.Context, attemptID string, booking *domain.Booking, reason string) {
	_, err := uc.attemptRepo.Transition(ctx, attemptID, domain.PhasePaymentPending, func(a *domain.CheckoutAttempt) {
		a.Phase = domain.PhaseFailed
		a.Booking = booking
		a.FailureReason = reason
		a.UpdatedAt = uc.timeProvider.Now()
	})
	if err != nil {
		uc.logger.Error("fail: failed to move attempt=%s to %s with booking id=%d: %v", attemptID, domain.PhaseFailed, booking.ID, err)
	}
}

// backfill заполняет поля записи, которые сервис бронирований не вернул
func backfill(booking *domain.Booking, attempt *domain.CheckoutAttempt) {
	if booking.StartTime.IsZero() {
		booking.StartTime = attempt.StartTime
	}
	if booking.EndTime.IsZero() && attempt.Invoice.CompletionTime != nil {
		booking.EndTime = *attempt.Invoice.CompletionTime
	}
	if booking.TotalPrice == 0 {
		booking.TotalPrice = attempt.Invoice.TotalPrice
	}
	if len(booking.ServiceIDs) == 0 {
		booking.ServiceIDs = attempt.Invoice.ServiceIDs()
	}
	if booking.CustomerID == 0 {
		booking.CustomerID = attempt.CustomerID
	}
	if booking.StaffID == nil {
		booking.StaffID = attempt.StaffID
	}
	if booking.PaymentMethod == "" {
		booking.PaymentMethod = attempt.PaymentMethod
	}
}
