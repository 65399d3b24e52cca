package payment

import "errors"

var (
	// ErrInvalidToken возвращается, когда платежный токен не удается разобрать
	ErrInvalidToken = errors.New("payment: invalid payment token")

	// ErrCancelled возвращается, когда ожидание подтверждения прервано контекстом
	ErrCancelled = errors.New("payment: confirmation cancelled")
)
