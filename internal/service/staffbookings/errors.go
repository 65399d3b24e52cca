package staffbookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда записи нет в коллекции сотрудника
	ErrBookingNotFound = errors.New("staffbookings: booking not found")

	// ErrFetchFailed возвращается, когда не удалось получить список записей сотрудника
	ErrFetchFailed = errors.New("staffbookings: failed to fetch bookings")

	// ErrUpdateFailed возвращается, когда сервис бронирований отклонил смену статуса
	ErrUpdateFailed = errors.New("staffbookings: status update failed")

	// ErrDeleteFailed возвращается, когда сервис бронирований отклонил удаление
	ErrDeleteFailed = errors.New("staffbookings: delete failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("staffbookings: invalid input data")
)
