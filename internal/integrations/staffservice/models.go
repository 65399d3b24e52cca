package staffservice

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Staff модель сотрудника из StaffService.
// Salon приходит либо плоским salonId, либо вложенным объектом.
type Staff struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	SalonID  int64  `json:"salonId"`
	Salon    *struct {
		ID int64 `json:"id"`
	} `json:"salon,omitempty"`
}

// ToDomain конвертирует модель StaffService в доменную
func (s *Staff) ToDomain() domain.Staff {
	salonID := s.SalonID
	if salonID == 0 && s.Salon != nil {
		salonID = s.Salon.ID
	}
	return domain.Staff{
		ID:       s.ID,
		FullName: s.FullName,
		SalonID:  salonID,
	}
}
