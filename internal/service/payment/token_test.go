package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestToken(t *testing.T) {
	token, err := EncodeToken([]int64{5, 7}, 1, domain.PaymentMoMo)
	require.NoError(t, err)
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")

	payload, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, &TokenPayload{ServiceIDs: []int64{5, 7}, SalonID: 1, PaymentMethod: "MOMO"}, payload)
}

func TestToken_EmptySelection(t *testing.T) {
	token, err := EncodeToken(nil, 3, domain.PaymentCash)
	require.NoError(t, err)

	payload, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, payload.ServiceIDs)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, err := DecodeToken("%%%")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = DecodeToken("bm90LWpzb24")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
