package domain

// LookupOutcome tags the result of resolving one joined resource
type LookupOutcome string

const (
	LookupResolved LookupOutcome = "resolved"
	LookupFailed   LookupOutcome = "failed"
)

// ServiceLookup is the tagged result of resolving one constituent service of a booking
type ServiceLookup struct {
	ServiceID int64
	Outcome   LookupOutcome
	Service   *Service // set only when Outcome == LookupResolved
}

// EnrichedBooking is a booking joined with its customer, staff and service details.
// A booking without a resolved customer is never represented.
type EnrichedBooking struct {
	Booking  Booking
	Customer User
	Staff    *Staff // nil when staff details could not be resolved
	Lookups  []ServiceLookup

	ServiceNames string // comma-joined display names of resolved services
	Duration     string // human readable EndTime - StartTime
}

// Services returns the resolved services in booking order
func (e *EnrichedBooking) Services() []Service {
	services := make([]Service, 0, len(e.Lookups))
	for _, l := range e.Lookups {
		if l.Outcome == LookupResolved && l.Service != nil {
			services = append(services, *l.Service)
		}
	}
	return services
}

// FailedServiceIDs returns the ids whose lookup failed
func (e *EnrichedBooking) FailedServiceIDs() []int64 {
	ids := make([]int64, 0)
	for _, l := range e.Lookups {
		if l.Outcome == LookupFailed {
			ids = append(ids, l.ServiceID)
		}
	}
	return ids
}

// Actions returns the staff actions legal for the booking's current status
func (e *EnrichedBooking) Actions() []Action {
	return ListActions(e.Booking.Status)
}
