package start_checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	checkoutStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/checkout"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type fakeSalons struct {
	salons map[int64]domain.Salon
	err    error
	calls  int
}

func (f *fakeSalons) GetSalon(_ context.Context, id int64) (*domain.Salon, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.salons[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", salonservice.ErrSalonNotFound, id)
	}
	return &s, nil
}

type fakeOfferings struct {
	catalog map[int64][]domain.Service
	err     error
}

func (f *fakeOfferings) ListBySalon(_ context.Context, salonID int64, _ *int64) ([]domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog[salonID], nil
}

type fakeCart struct {
	ids []string
}

func (f *fakeCart) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	return &domain.Cart{SessionID: sessionID, ServiceIDs: f.ids}, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestUseCase(cartIDs []string) (*UseCase, *fakeSalons, *checkoutStorage.Repository) {
	salons := &fakeSalons{salons: map[int64]domain.Salon{1: {ID: 1, Name: "Salon Hoa"}}}
	offerings := &fakeOfferings{catalog: map[int64][]domain.Service{
		1: {{ID: 5, Steps: "Gội đầu", Price: ptr.Ptr(200000.0), DurationMinutes: ptr.Ptr(30)}},
	}}
	repo := checkoutStorage.NewRepository()

	uc := NewUseCase(salons, offerings, &fakeCart{ids: cartIDs}, repo, logger.Nop())
	uc.newID = func() string { return "attempt-1" }
	uc.timeProvider = fixedClock{now: time.Date(2025, 1, 9, 8, 0, 0, 0, time.UTC)}
	return uc, salons, repo
}

func validRequest() *Request {
	return &Request{
		SessionID:      "s1",
		CustomerID:     42,
		SalonID:        1,
		StartTime:      ptr.Ptr(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)),
		PaymentMethods: []string{"MoMo"},
	}
}

func TestExecute_Success(t *testing.T) {
	uc, _, repo := newTestUseCase([]string{"5"})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	a := resp.Attempt
	assert.Equal(t, "attempt-1", a.ID)
	assert.Equal(t, domain.PhaseAwaitingInvoiceConfirmation, a.Phase)
	assert.Equal(t, domain.PaymentMoMo, a.PaymentMethod)
	assert.Equal(t, "Salon Hoa", a.SalonName)
	assert.Equal(t, 200000.0, a.Invoice.TotalPrice)
	assert.Equal(t, 30, a.Invoice.TotalDurationMinutes)
	require.NotNil(t, a.Invoice.CompletionTime)
	assert.Equal(t, time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC), *a.Invoice.CompletionTime)
	assert.Empty(t, resp.Warnings)

	stored, err := repo.Get(context.Background(), "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, a.Invoice.TotalPrice, stored.Invoice.TotalPrice)
}

func TestExecute_EmptySelectionIsAllowed(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Attempt.Invoice.TotalPrice)
	assert.Contains(t, resp.Warnings, WarningEmptySelection)
}

func TestExecute_MissingServicesWarning(t *testing.T) {
	uc, _, _ := newTestUseCase([]string{"5", "77"})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"77"}, resp.Attempt.Invoice.MissingServiceIDs)
	assert.Contains(t, resp.Warnings, WarningMissingServices)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{name: "no session", mutate: func(r *Request) { r.SessionID = "" }, field: "sessionId"},
		{name: "no customer", mutate: func(r *Request) { r.CustomerID = 0 }, field: "customerId"},
		{name: "no salon", mutate: func(r *Request) { r.SalonID = 0 }, field: "salonId"},
		{name: "no start time", mutate: func(r *Request) { r.StartTime = nil }, field: "startTime"},
		{name: "zero start time", mutate: func(r *Request) { r.StartTime = &time.Time{} }, field: "startTime"},
		{name: "no payment method", mutate: func(r *Request) { r.PaymentMethods = nil }, field: "paymentMethod"},
		{name: "blank payment method", mutate: func(r *Request) { r.PaymentMethods = []string{" "} }, field: "paymentMethod"},
		{name: "unknown payment method", mutate: func(r *Request) { r.PaymentMethods = []string{"bitcoin"} }, field: "paymentMethod"},
		{name: "bad staff", mutate: func(r *Request) { r.StaffID = ptr.Ptr(int64(-1)) }, field: "staffId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, salons, _ := newTestUseCase([]string{"5"})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.Zero(t, salons.calls, "validation must happen before network calls")
		})
	}
}

func TestExecute_SalonErrors(t *testing.T) {
	uc, _, _ := newTestUseCase([]string{"5"})
	req := validRequest()
	req.SalonID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonNotFound)

	uc, salons, _ := newTestUseCase([]string{"5"})
	salons.err = errors.New("connection refused")
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
