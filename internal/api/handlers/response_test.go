package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "không thể")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "không thể", body.Error)
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		Action string `json:"action" validate:"required"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"action":"confirm"}`))
	require.NoError(t, DecodeAndValidate(r, &p))
	assert.Equal(t, "confirm", p.Action)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	err := DecodeAndValidate(r, &payload{})
	require.Error(t, err)
	assert.Equal(t, "action", FieldOf(err))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{bad`))
	assert.Error(t, DecodeJSON(r, &payload{}))
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "12"})
	id, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "-1"})
	_, err = PathInt64(r, "id")
	assert.Error(t, err)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "abc"})
	_, err = PathInt64(r, "id")
	assert.Error(t, err)
}
