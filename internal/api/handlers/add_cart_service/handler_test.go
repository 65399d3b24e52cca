package add_cart_service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	cartStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/cart"
	"github.com/m04kA/SMC-SalonBooking/internal/service/cart"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func newTestHandler() http.Handler {
	svc := cart.NewService(cartStorage.NewMemoryStore(), logger.Nop())
	return middleware.Session(http.HandlerFunc(NewHandler(svc, logger.Nop()).Handle))
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/services", strings.NewReader(body))
	req.Header.Set("X-Session-ID", "sess-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_AddAndDuplicate(t *testing.T) {
	h := newTestHandler()

	rec := post(h, `{"serviceId":"101"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AddServiceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"101"}, resp.Cart.ServiceIDs)
	assert.Empty(t, resp.Warning)

	rec = post(h, `{"serviceId":"101"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp = AddServiceResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"101"}, resp.Cart.ServiceIDs)
	assert.Equal(t, msgAlreadyInCart, resp.Warning)
}

func TestHandler_Validation(t *testing.T) {
	h := newTestHandler()

	rec := post(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"serviceId"`)

	rec = post(h, `{"serviceId":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"serviceId"`)

	rec = post(h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MissingSession(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/services", strings.NewReader(`{"serviceId":"1"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
