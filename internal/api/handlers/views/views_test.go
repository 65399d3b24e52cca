package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func TestNewCartView_EmptyCart(t *testing.T) {
	raw, err := json.Marshal(NewCartView(&domain.Cart{SessionID: "s"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"serviceIds":[]}`, string(raw))
}

func TestNewInvoiceView(t *testing.T) {
	completion := time.Date(2025, 1, 15, 10, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	v := NewInvoiceView(domain.Invoice{
		Services: []domain.Service{
			{ID: 1, Steps: "Gội đầu|Làm ướt", Price: ptr.Ptr(50000.0), DurationMinutes: ptr.Ptr(30)},
		},
		TotalPrice:           50000,
		TotalDurationMinutes: 30,
		CompletionTime:       &completion,
	})

	require.Len(t, v.Services, 1)
	assert.Equal(t, "Gội đầu", v.Services[0].Name)
	assert.Equal(t, []StepView{{Name: "Làm ướt"}}, v.Services[0].Procedure)
	assert.Equal(t, []string{}, v.MissingServiceIDs)
	require.NotNil(t, v.CompletionTime)
	assert.Equal(t, "2025-01-15T10:30:00+07:00", *v.CompletionTime)
}

func TestNewEnrichedBookingView(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	v := NewEnrichedBookingView(domain.EnrichedBooking{
		Booking: domain.Booking{
			ID:        5,
			StartTime: start,
			EndTime:   start.Add(90 * time.Minute),
			Status:    domain.StatusCancelled,
		},
		Customer: domain.User{ID: 2, FullName: "Khách"},
		Lookups: []domain.ServiceLookup{
			{ServiceID: 1, Outcome: domain.LookupResolved, Service: &domain.Service{ID: 1, Steps: "Cắt"}},
			{ServiceID: 2, Outcome: domain.LookupFailed},
		},
		ServiceNames: "Cắt",
		Duration:     "1h 30m",
	})

	assert.Equal(t, int64(5), v.ID)
	assert.Equal(t, "CANCELLED", v.Status)
	assert.Equal(t, []string{"restore"}, v.Actions)
	assert.Equal(t, []int64{2}, v.FailedServiceIDs)
	require.Len(t, v.Services, 1)
	assert.Equal(t, "Cắt", v.Services[0].Name)
	assert.Nil(t, v.Staff)
	require.NotNil(t, v.EndTime)
	assert.Equal(t, "2025-01-15T10:30:00Z", *v.EndTime)
}
