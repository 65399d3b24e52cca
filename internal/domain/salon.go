package domain

// Salon represents a salon. Read-only for this service.
type Salon struct {
	ID          int64
	Name        string
	Address     string
	Contact     string
	Email       string
	OpeningTime string // HH:MM
	ClosingTime string // HH:MM
	Images      []string
}

// Staff represents a staff member attached to a salon
type Staff struct {
	ID       int64
	FullName string
	SalonID  int64
}

// User is the identity record of a customer or a staff member
type User struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
}
