package models

type UserRole string
type BookingStatus string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleProvider UserRole = "provider"

	// Статусы хранятся с заглавной буквы и в таком же виде показываются
	// на дашборде.
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusAccepted BookingStatus = "Accepted"
)

// Valid проверяет, что роль входит в известный набор
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCustomer, UserRoleProvider:
		return true
	default:
		return false
	}
}
