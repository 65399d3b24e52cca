package domain

import "errors"

var (
	// ErrIllegalTransition is returned when an action is not allowed from the current status
	ErrIllegalTransition = errors.New("domain: illegal status transition")

	// ErrUnknownAction is returned for an action name outside the known set
	ErrUnknownAction = errors.New("domain: unknown action")

	// ErrUnknownStatus is returned for a status outside the canonical set
	ErrUnknownStatus = errors.New("domain: unknown status")

	// ErrUnknownPaymentMethod is returned for a payment method that cannot be normalized
	ErrUnknownPaymentMethod = errors.New("domain: unknown payment method")
)
