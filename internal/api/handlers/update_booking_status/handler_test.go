package update_booking_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/gateway"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staffbookings"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	calls  int
	action domain.Action
	result *domain.EnrichedBooking
	err    error
}

func (f *fakeService) ApplyTransition(_ context.Context, _, _ int64, action domain.Action) (*domain.EnrichedBooking, error) {
	f.calls++
	f.action = action
	return f.result, f.err
}

func serve(svc StaffBookingsService, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/staff/{staffId}/bookings/{bookingId}/status",
		NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{result: &domain.EnrichedBooking{
		Booking:  domain.Booking{ID: 11, Status: domain.StatusConfirmed},
		Customer: domain.User{ID: 3, FullName: "Nguyễn Văn A"},
	}}

	rec := serve(svc, "/api/v1/staff/2/bookings/11/status", `{"action":"Confirm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ActionConfirm, svc.action)

	var view views.EnrichedBookingView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "CONFIRMED", view.Status)
	assert.Equal(t, []string{"complete", "cancel"}, view.Actions)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "unknown action never reaches the service",
			path:       "/api/v1/staff/2/bookings/11/status",
			body:       `{"action":"archive"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing action",
			path:       "/api/v1/staff/2/bookings/11/status",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid booking id",
			path:       "/api/v1/staff/2/bookings/abc/status",
			body:       `{"action":"confirm"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "illegal transition",
			path:       "/api/v1/staff/2/bookings/11/status",
			body:       `{"action":"restore"}`,
			err:        fmt.Errorf("%w: restore is not allowed from PENDING", domain.ErrIllegalTransition),
			wantStatus: http.StatusConflict,
			wantCalls:  1,
		},
		{
			name:       "booking not in collection",
			path:       "/api/v1/staff/2/bookings/11/status",
			body:       `{"action":"confirm"}`,
			err:        staffbookings.ErrBookingNotFound,
			wantStatus: http.StatusNotFound,
			wantCalls:  1,
		},
		{
			name: "gateway failure",
			path: "/api/v1/staff/2/bookings/11/status",
			body: `{"action":"confirm"}`,
			err: fmt.Errorf("%w: %w", staffbookings.ErrUpdateFailed,
				&gateway.Error{Gateway: "booking", Operation: "update_status", StatusCode: 500, Message: "Lỗi máy chủ"}),
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
