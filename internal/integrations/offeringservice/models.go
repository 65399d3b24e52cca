package offeringservice

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ServiceOffering модель услуги из ServiceOfferingService.
// Name, Description и Image - выровненные по позициям списки через "|".
type ServiceOffering struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	CategoryID  int64    `json:"categoryId"`
	SalonID     int64    `json:"salonId"`
}

// ToDomain конвертирует модель услуги в доменную
func (s *ServiceOffering) ToDomain() domain.Service {
	return domain.Service{
		ID:              s.ID,
		Steps:           s.Name,
		Descriptions:    s.Description,
		Images:          s.Image,
		Price:           s.Price,
		DurationMinutes: s.Duration,
		CategoryID:      s.CategoryID,
		SalonID:         s.SalonID,
	}
}
