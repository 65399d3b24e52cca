package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	// DefaultDelay задержка перед разрешением оплаты
	DefaultDelay = 2000 * time.Millisecond
	// DefaultSuccessRate вероятность успешной оплаты
	DefaultSuccessRate = 0.8
)

const declinedReason = "Thanh toán không thành công, vui lòng thử lại"

// Simulator имитирует подтверждение оплаты: ждет фиксированную задержку
// и случайно выбирает исход с заданной вероятностью успеха.
type Simulator struct {
	delay       time.Duration
	successRate float64
	logger      Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulator создает симулятор оплаты. Если source nil, используется источник от текущего времени.
func NewSimulator(delay time.Duration, successRate float64, source rand.Source, logger Logger) *Simulator {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Simulator{
		delay:       delay,
		successRate: successRate,
		logger:      logger,
		rnd:         rand.New(source),
	}
}

// Confirm ждет задержку и возвращает случайный исход
func (s *Simulator) Confirm(ctx context.Context, attempt *domain.CheckoutAttempt) (*Result, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.logger.Warn("Simulator.Confirm: attempt=%s cancelled: %v", attempt.ID, ctx.Err())
			return nil, ErrCancelled
		case <-timer.C:
		}
	}

	if s.draw() < s.successRate {
		s.logger.Info("Simulator.Confirm: attempt=%s payment succeeded, method=%s", attempt.ID, attempt.PaymentMethod)
		return &Result{Succeeded: true}, nil
	}

	s.logger.Warn("Simulator.Confirm: attempt=%s payment declined, method=%s", attempt.ID, attempt.PaymentMethod)
	return &Result{Succeeded: false, Reason: declinedReason}, nil
}

func (s *Simulator) draw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
