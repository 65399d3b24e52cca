package confirm_checkout

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда попытка не найдена или принадлежит другой сессии
	ErrAttemptNotFound = errors.New("confirm_checkout: attempt not found")

	// ErrAlreadyConfirmed возвращается, когда счет уже подтвержден
	ErrAlreadyConfirmed = errors.New("confirm_checkout: attempt already confirmed")

	// ErrBookingFailed возвращается, когда сервис бронирований отклонил создание записи
	ErrBookingFailed = errors.New("confirm_checkout: booking creation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_checkout: internal error")
)
