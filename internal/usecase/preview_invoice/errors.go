package preview_invoice

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_invoice: invalid input data")

	// ErrCatalogUnavailable возвращается, когда не удалось получить каталог салона
	ErrCatalogUnavailable = errors.New("preview_invoice: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_invoice: internal error")
)
