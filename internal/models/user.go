package models

type User struct {
	BaseModel
	Username string   `gorm:"size:100;not null;index"`
	Role     UserRole `gorm:"type:varchar(20);not null"`
	// Category заполнена только у провайдеров (например, Plumber).
	Category string `gorm:"size:50"`
}

// IsProvider - провайдер услуг (у него есть категория)
func (u *User) IsProvider() bool {
	return u.Role == UserRoleProvider
}

// IsCustomer - заказчик
func (u *User) IsCustomer() bool {
	return u.Role == UserRoleCustomer
}
