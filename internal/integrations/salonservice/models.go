package salonservice

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Salon модель салона из SalonService
type Salon struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Contact     string   `json:"contact"`
	Email       string   `json:"email"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
	Images      []string `json:"images"`
}

// ToDomain конвертирует модель SalonService в доменную
func (s *Salon) ToDomain() domain.Salon {
	return domain.Salon{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Contact:     s.Contact,
		Email:       s.Email,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		Images:      s.Images,
	}
}
