package checkout

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда попытка оформления не найдена
	ErrAttemptNotFound = errors.New("checkout repository: attempt not found")

	// ErrAttemptExists возвращается при повторном создании попытки с тем же ID
	ErrAttemptExists = errors.New("checkout repository: attempt already exists")
)
