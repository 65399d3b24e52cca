package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound возвращается, когда ресурс не найден (404)
	ErrNotFound = errors.New("gateway: resource not found")

	// ErrUnavailable возвращается при сетевой ошибке (сервис недоступен)
	ErrUnavailable = errors.New("gateway: service unavailable")

	// ErrRejected возвращается, когда сервис ответил не-2xx статусом
	ErrRejected = errors.New("gateway: request rejected")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("gateway: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gateway: internal error")
)

// fallbackMessage показывается пользователю, если сервис не прислал своего сообщения
const fallbackMessage = "Đã xảy ra lỗi, vui lòng thử lại sau"

// Error ошибка вызова ресурсного сервиса.
// Message - сообщение самого сервиса, если оно было в ответе, иначе общее сообщение.
type Error struct {
	Gateway    string
	Operation  string
	StatusCode int // 0 при сетевой ошибке
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s.%s: %s", e.Gateway, e.Operation, e.Message)
	}
	return fmt.Sprintf("%s.%s: status %d: %s", e.Gateway, e.Operation, e.StatusCode, e.Message)
}

// Is позволяет сравнивать ошибку с sentinel-ошибками пакета через errors.Is
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnavailable:
		return e.StatusCode == 0
	case ErrRejected:
		return e.StatusCode != 0
	}
	return false
}

func (e *Error) Unwrap() error {
	return e.cause
}

// UserMessage возвращает сообщение, пригодное для показа пользователю
func UserMessage(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallbackMessage
}
