package domain

import (
	"fmt"
	"strings"
)

// PaymentMethod is a normalized payment method identifier
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentMoMo         PaymentMethod = "MOMO"
	PaymentVNPay        PaymentMethod = "VNPAY"
	PaymentZaloPay      PaymentMethod = "ZALOPAY"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCard         PaymentMethod = "CARD"
)

var paymentAliases = map[string]PaymentMethod{
	"CASH":          PaymentCash,
	"MOMO":          PaymentMoMo,
	"VNPAY":         PaymentVNPay,
	"ZALOPAY":       PaymentZaloPay,
	"BANK_TRANSFER": PaymentBankTransfer,
	"BANKTRANSFER":  PaymentBankTransfer,
	"BANK":          PaymentBankTransfer,
	"TRANSFER":      PaymentBankTransfer,
	"CARD":          PaymentCard,
	"CREDIT_CARD":   PaymentCard,
}

// NormalizePaymentMethod maps user-facing spellings ("MoMo", "vn pay", "credit card") to identifiers
func NormalizePaymentMethod(raw string) (PaymentMethod, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if m, ok := paymentAliases[key]; ok {
		return m, nil
	}
	if m, ok := paymentAliases[strings.ReplaceAll(key, "_", "")]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, raw)
}
