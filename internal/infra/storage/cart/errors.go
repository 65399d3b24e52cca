package cart

import "errors"

var (
	// ErrCartNotFound возвращается, когда корзины для сессии нет
	ErrCartNotFound = errors.New("cart.storage: cart not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cart.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("cart.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cart.storage: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации корзины
	ErrEncode = errors.New("cart.storage: failed to encode cart")
)
