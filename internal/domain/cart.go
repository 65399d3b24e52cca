package domain

import "time"

// Cart is the durable set of service ids a customer intends to book.
// ServiceIDs keeps insertion order and never holds duplicates.
type Cart struct {
	SessionID  string
	ServiceIDs []string
	ExpiresAt  time.Time
}

// Contains returns true if the id is in the cart
func (c *Cart) Contains(id string) bool {
	for _, existing := range c.ServiceIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// IsExpired returns true if the cart expired at now
func (c *Cart) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// DroppedEntry is a cart entry removed by reconciliation
type DroppedEntry struct {
	ServiceID string
	Name      string // empty when no catalog snapshot knows the id
}
