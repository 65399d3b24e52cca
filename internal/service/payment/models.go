package payment

// Result итог подтверждения оплаты
type Result struct {
	Succeeded bool
	Reason    string // причина отказа, пустая при успехе
}

// TokenPayload содержимое платежного токена для сканирования
type TokenPayload struct {
	ServiceIDs    []int64 `json:"serviceIds"`
	SalonID       int64   `json:"salonId"`
	PaymentMethod string  `json:"paymentMethod"`
}
