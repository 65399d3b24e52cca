package domain

import "time"

// Booking represents a salon appointment as held by the booking resource service
type Booking struct {
	ID            int64
	CustomerID    int64
	SalonID       int64
	StaffID       *int64
	ServiceIDs    []int64
	StartTime     time.Time
	EndTime       time.Time // startTime + sum of service durations, fixed at submission
	Status        Status
	PaymentMethod PaymentMethod
	TotalPrice    float64
	Note          *string
	Rating        *int // 1-5
}

// Duration returns EndTime - StartTime, never negative
func (b *Booking) Duration() time.Duration {
	if b.EndTime.Before(b.StartTime) {
		return 0
	}
	return b.EndTime.Sub(b.StartTime)
}

// Actions returns the staff actions legal for the booking's current status
func (b *Booking) Actions() []Action {
	return ListActions(b.Status)
}

// IsCompleted returns true if the booking reached COMPLETED
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// IsCancelled returns true if the booking is CANCELLED
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingRequest is the payload sent to the booking resource service on submission
type BookingRequest struct {
	SalonID       int64
	CustomerID    int64
	StartTime     time.Time
	ServiceIDs    []int64
	StaffID       *int64
	PaymentMethod PaymentMethod
}
