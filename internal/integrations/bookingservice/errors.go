package bookingservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingservice: booking not found")

	// ErrInvalidBooking возвращается, когда сервис отдал бронирование, которое нельзя разобрать
	ErrInvalidBooking = errors.New("bookingservice: invalid booking payload")
)
