package domain

import "time"

// CheckoutPhase is the externally visible state of a submission attempt
type CheckoutPhase string

const (
	PhaseAwaitingInvoiceConfirmation CheckoutPhase = "AWAITING_INVOICE_CONFIRMATION"
	PhasePaymentPending              CheckoutPhase = "PAYMENT_PENDING"
	PhaseSucceeded                   CheckoutPhase = "SUCCEEDED"
	PhaseFailed                      CheckoutPhase = "FAILED"
)

// CheckoutAttempt tracks one submission from invoice confirmation to payment resolution
type CheckoutAttempt struct {
	ID            string
	SessionID     string
	CustomerID    int64
	SalonID       int64
	SalonName     string
	StaffID       *int64
	StartTime     time.Time
	PaymentMethod PaymentMethod
	Invoice       Invoice
	Phase         CheckoutPhase

	Booking       *Booking // set once the booking service created it
	PaymentToken  string   // scannable payment-collection token
	FailureReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinished returns true if the attempt reached SUCCEEDED or FAILED
func (a *CheckoutAttempt) IsFinished() bool {
	return a.Phase == PhaseSucceeded || a.Phase == PhaseFailed
}
