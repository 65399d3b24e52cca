package get_staff_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staffbookings"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

var ict = time.FixedZone("ICT", 7*3600)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeService struct {
	bookings  []domain.EnrichedBooking
	err       error
	loads     int
	refreshes int
}

func (f *fakeService) Load(_ context.Context, _ int64) ([]domain.EnrichedBooking, error) {
	f.loads++
	return f.bookings, f.err
}

func (f *fakeService) Refresh(_ context.Context, _ int64) ([]domain.EnrichedBooking, error) {
	f.refreshes++
	return f.bookings, f.err
}

func enriched(id int64, start time.Time, status domain.Status) domain.EnrichedBooking {
	return domain.EnrichedBooking{
		Booking: domain.Booking{
			ID:        id,
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Status:    status,
		},
		Customer: domain.User{ID: id * 10, FullName: "Khách"},
		Duration: "1h",
	}
}

func serve(svc StaffBookingsService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, ict, logger.Nop())
	h.timeProvider = &fakeClock{now: time.Date(2025, 1, 15, 10, 0, 0, 0, ict)}

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/staff/{staffId}/bookings", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Filters(t *testing.T) {
	svc := &fakeService{bookings: []domain.EnrichedBooking{
		enriched(1, time.Date(2025, 1, 15, 9, 0, 0, 0, ict), domain.StatusPending),
		enriched(2, time.Date(2025, 1, 15, 14, 0, 0, 0, ict), domain.StatusConfirmed),
		enriched(3, time.Date(2025, 1, 16, 9, 0, 0, 0, ict), domain.StatusPending),
	}}

	tests := []struct {
		name    string
		target  string
		wantIDs []int64
	}{
		{name: "no filters", target: "/api/v1/staff/2/bookings", wantIDs: []int64{1, 2, 3}},
		{name: "today", target: "/api/v1/staff/2/bookings?date=today", wantIDs: []int64{1, 2}},
		{name: "today pending", target: "/api/v1/staff/2/bookings?date=today&status=pending", wantIDs: []int64{1}},
		{name: "tomorrow", target: "/api/v1/staff/2/bookings?date=tomorrow", wantIDs: []int64{3}},
		{name: "status all", target: "/api/v1/staff/2/bookings?status=all", wantIDs: []int64{1, 2, 3}},
		{name: "unknown date filter", target: "/api/v1/staff/2/bookings?date=someday", wantIDs: []int64{1, 2, 3}},
		{
			name:    "custom range",
			target:  "/api/v1/staff/2/bookings?date=custom&from=2025-01-16&to=2025-01-16",
			wantIDs: []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(svc, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp StaffBookingsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

			ids := make([]int64, 0, len(resp.Bookings))
			for _, b := range resp.Bookings {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 3, resp.Total)
			assert.Equal(t, len(tt.wantIDs), resp.Filtered)
		})
	}
}

func TestHandler_RefreshFlag(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/staff/2/bookings")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = serve(svc, "/api/v1/staff/2/bookings?refresh=true")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, svc.loads)
	assert.Equal(t, 1, svc.refreshes)

	rec = serve(svc, "/api/v1/staff/2/bookings?refresh=maybe")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/staff/2/bookings?status=archived")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&fakeService{}, "/api/v1/staff/0/bookings")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	gwErr := &gateway.Error{Gateway: "booking", Operation: "list_by_staff", StatusCode: 503, Message: "Dịch vụ tạm ngưng"}
	svc := &fakeService{err: fmt.Errorf("%w: %w", staffbookings.ErrFetchFailed, gwErr)}
	rec = serve(svc, "/api/v1/staff/2/bookings")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dịch vụ tạm ngưng")
}
