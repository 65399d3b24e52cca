// Package views JSON-представления доменных моделей для HTTP-ответов.
package views

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type CartView struct {
	ServiceIDs []string `json:"serviceIds"`
	ExpiresAt  *string  `json:"expiresAt,omitempty"`
}

type StepView struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type ServiceView struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Price           *float64   `json:"price"`
	DurationMinutes *int       `json:"duration"`
	Procedure       []StepView `json:"procedure"`
}

type InvoiceView struct {
	Services             []ServiceView `json:"services"`
	MissingServiceIDs    []string      `json:"missingServiceIds"`
	TotalPrice           float64       `json:"totalPrice"`
	TotalDurationMinutes int           `json:"totalDuration"`
	CompletionTime       *string       `json:"completionTime"`
}

type BookingView struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	SalonID       int64   `json:"salonId"`
	StaffID       *int64  `json:"staffId"`
	ServiceIDs    []int64 `json:"serviceIds"`
	StartTime     string  `json:"startTime"`
	EndTime       *string `json:"endTime"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	TotalPrice    float64 `json:"totalPrice"`
	Note          *string `json:"note,omitempty"`
	Rating        *int    `json:"rating,omitempty"`
}

type AttemptView struct {
	ID            string       `json:"id"`
	Phase         string       `json:"phase"`
	SalonID       int64        `json:"salonId"`
	SalonName     string       `json:"salonName"`
	StaffID       *int64       `json:"staffId"`
	StartTime     string       `json:"startTime"`
	PaymentMethod string       `json:"paymentMethod"`
	Invoice       InvoiceView  `json:"invoice"`
	Booking       *BookingView `json:"booking,omitempty"`
	PaymentToken  string       `json:"paymentToken,omitempty"`
	FailureReason string       `json:"failureReason,omitempty"`
	Warnings      []string     `json:"warnings,omitempty"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

type CustomerView struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type StaffView struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type EnrichedBookingView struct {
	BookingView
	Customer         CustomerView  `json:"customer"`
	Staff            *StaffView    `json:"staff"`
	Services         []ServiceView `json:"services"`
	FailedServiceIDs []int64       `json:"failedServiceIds,omitempty"`
	ServiceNames     string        `json:"serviceNames"`
	Duration         string        `json:"duration"`
	Actions          []string      `json:"actions"`
}

func NewCartView(c *domain.Cart) CartView {
	v := CartView{ServiceIDs: c.ServiceIDs}
	if v.ServiceIDs == nil {
		v.ServiceIDs = []string{}
	}
	if !c.ExpiresAt.IsZero() {
		v.ExpiresAt = formatPtr(c.ExpiresAt)
	}
	return v
}

func NewServiceView(s domain.Service) ServiceView {
	procedure := s.Procedure()
	steps := make([]StepView, 0, len(procedure))
	for _, p := range procedure {
		steps = append(steps, StepView{Name: p.Name, Description: p.Description, Image: p.Image})
	}
	return ServiceView{
		ID:              s.ID,
		Name:            s.DisplayName(),
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Procedure:       steps,
	}
}

func NewInvoiceView(inv domain.Invoice) InvoiceView {
	services := make([]ServiceView, 0, len(inv.Services))
	for _, s := range inv.Services {
		services = append(services, NewServiceView(s))
	}
	missing := inv.MissingServiceIDs
	if missing == nil {
		missing = []string{}
	}

	v := InvoiceView{
		Services:             services,
		MissingServiceIDs:    missing,
		TotalPrice:           inv.TotalPrice,
		TotalDurationMinutes: inv.TotalDurationMinutes,
	}
	if inv.CompletionTime != nil {
		v.CompletionTime = formatPtr(*inv.CompletionTime)
	}
	return v
}

func NewBookingView(b domain.Booking) BookingView {
	v := BookingView{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		SalonID:       b.SalonID,
		StaffID:       b.StaffID,
		ServiceIDs:    b.ServiceIDs,
		StartTime:     b.StartTime.Format(time.RFC3339),
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		TotalPrice:    b.TotalPrice,
		Note:          b.Note,
		Rating:        b.Rating,
	}
	if v.ServiceIDs == nil {
		v.ServiceIDs = []int64{}
	}
	if !b.EndTime.IsZero() {
		v.EndTime = formatPtr(b.EndTime)
	}
	return v
}

func NewAttemptView(a *domain.CheckoutAttempt, warnings []string) AttemptView {
	v := AttemptView{
		ID:            a.ID,
		Phase:         string(a.Phase),
		SalonID:       a.SalonID,
		SalonName:     a.SalonName,
		StaffID:       a.StaffID,
		StartTime:     a.StartTime.Format(time.RFC3339),
		PaymentMethod: string(a.PaymentMethod),
		Invoice:       NewInvoiceView(a.Invoice),
		PaymentToken:  a.PaymentToken,
		FailureReason: a.FailureReason,
		Warnings:      warnings,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
	if a.Booking != nil {
		b := NewBookingView(*a.Booking)
		v.Booking = &b
	}
	return v
}

func NewEnrichedBookingView(e domain.EnrichedBooking) EnrichedBookingView {
	services := make([]ServiceView, 0, len(e.Lookups))
	for _, s := range e.Services() {
		services = append(services, NewServiceView(s))
	}

	actions := make([]string, 0, 2)
	for _, a := range e.Actions() {
		actions = append(actions, string(a))
	}

	v := EnrichedBookingView{
		BookingView: NewBookingView(e.Booking),
		Customer: CustomerView{
			ID:       e.Customer.ID,
			FullName: e.Customer.FullName,
			Email:    e.Customer.Email,
			Phone:    e.Customer.Phone,
		},
		Services:         services,
		FailedServiceIDs: e.FailedServiceIDs(),
		ServiceNames:     e.ServiceNames,
		Duration:         e.Duration,
		Actions:          actions,
	}
	if e.Staff != nil {
		v.Staff = &StaffView{ID: e.Staff.ID, FullName: e.Staff.FullName}
	}
	return v
}

func NewEnrichedBookingViews(list []domain.EnrichedBooking) []EnrichedBookingView {
	result := make([]EnrichedBookingView, 0, len(list))
	for _, e := range list {
		result = append(result, NewEnrichedBookingView(e))
	}
	return result
}

func formatPtr(t time.Time) *string {
	s := t.Format(time.RFC3339)
	return &s
}
