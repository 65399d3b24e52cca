package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		raw  string
		want PaymentMethod
	}{
		{"MoMo", PaymentMoMo},
		{"cash", PaymentCash},
		{"vn pay", PaymentVNPay},
		{"Zalo Pay", PaymentZaloPay},
		{"bank-transfer", PaymentBankTransfer},
		{"credit card", PaymentCard},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizePaymentMethod(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NormalizePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}
