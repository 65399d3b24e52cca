package domain

import (
	"strings"

	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

const listSeparator = "|"

// Service is a service offering of a salon.
// Steps, Descriptions and Images are positionally aligned pipe-delimited lists;
// the first step is the display name, the rest are procedure steps.
type Service struct {
	ID              int64
	Steps           string
	Descriptions    string
	Images          string
	Price           *float64 // VND
	DurationMinutes *int
	CategoryID      int64
	SalonID         int64
}

// Step is one positional element of the aligned lists.
// A missing element is left empty.
type Step struct {
	Name        string
	Description string
	Image       string
}

// DisplayName returns the first pipe-delimited step
func (s *Service) DisplayName() string {
	return elementAt(s.Steps, 0)
}

// StepAt returns the aligned step at index i
func (s *Service) StepAt(i int) Step {
	return Step{
		Name:        elementAt(s.Steps, i),
		Description: elementAt(s.Descriptions, i),
		Image:       elementAt(s.Images, i),
	}
}

// Procedure returns the steps after the display name
func (s *Service) Procedure() []Step {
	n := len(splitList(s.Steps))
	if n <= 1 {
		return []Step{}
	}
	steps := make([]Step, 0, n-1)
	for i := 1; i < n; i++ {
		steps = append(steps, s.StepAt(i))
	}
	return steps
}

// PriceValue returns the price, 0 when missing
func (s *Service) PriceValue() float64 {
	return ptr.Value(s.Price)
}

// DurationValue returns the duration in minutes, 0 when missing
func (s *Service) DurationValue() int {
	return ptr.Value(s.DurationMinutes)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, listSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func elementAt(raw string, i int) string {
	parts := splitList(raw)
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}
