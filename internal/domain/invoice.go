package domain

import "time"

// Invoice is the derived total of a service selection for a start time
type Invoice struct {
	Services             []Service // resolved services, in cart order
	MissingServiceIDs    []string  // cart ids with no match in the catalog
	TotalPrice           float64
	TotalDurationMinutes int
	CompletionTime       *time.Time // nil when the start time is unset or nothing resolved
}

// IsEmpty returns true if no cart entry resolved to a service
func (i *Invoice) IsEmpty() bool {
	return len(i.Services) == 0
}

// ServiceIDs returns the ids of the resolved services in order
func (i *Invoice) ServiceIDs() []int64 {
	ids := make([]int64, 0, len(i.Services))
	for _, s := range i.Services {
		ids = append(ids, s.ID)
	}
	return ids
}
