package userservice

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// User модель пользователя из UserService
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ToDomain конвертирует модель UserService в доменную
func (u *User) ToDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}
