package reconcile_cart

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reconcile_cart: invalid input data")

	// ErrCatalogUnavailable возвращается, когда не удалось получить каталог текущего салона
	ErrCatalogUnavailable = errors.New("reconcile_cart: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reconcile_cart: internal error")
)
