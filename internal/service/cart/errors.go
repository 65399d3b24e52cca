package cart

import "errors"

var (
	// ErrAlreadyInCart возвращается как предупреждение, когда услуга уже есть в корзине.
	// Корзина при этом не меняется.
	ErrAlreadyInCart = errors.New("cart: service already in cart")

	// ErrInvalidServiceID возвращается для пустого ID услуги
	ErrInvalidServiceID = errors.New("cart: invalid service id")

	// ErrInvalidSession возвращается для пустого ID сессии
	ErrInvalidSession = errors.New("cart: invalid session id")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("cart: internal error")
)
