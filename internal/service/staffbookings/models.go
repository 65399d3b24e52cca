package staffbookings

// Виды деградации обогащения для метрик
const (
	degradedBookingDropped = "booking_dropped"
	degradedServiceFailed  = "service_failed"
	degradedStaffMissing   = "staff_unavailable"
)

// DefaultMaxConcurrency ограничение параллельно обогащаемых записей
const DefaultMaxConcurrency = 8
