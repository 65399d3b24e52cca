package get_checkout

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда попытка не найдена или принадлежит другой сессии
	ErrAttemptNotFound = errors.New("get_checkout: attempt not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_checkout: internal error")
)
