package salonservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func TestClient_GetSalon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/salon/3" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":3,"name":"Salon Hoa","address":"1 Lê Lợi",
			"openingTime":"08:00","closingTime":"21:00","images":["a.jpg"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil, logger.Nop())

	salon, err := c.GetSalon(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), salon.ID)
	assert.Equal(t, "Salon Hoa", salon.Name)
	assert.Equal(t, "08:00", salon.OpeningTime)
	assert.Equal(t, []string{"a.jpg"}, salon.Images)

	_, err = c.GetSalon(context.Background(), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}
