package dto

import "karigar_backend/internal/models"

// BookingRow - строка дашборда: заявка плюс имя контрагента
// (для заказчика - провайдер, для провайдера - заказчик).
type BookingRow struct {
	ID           uint
	Counterparty string
	Status       models.BookingStatus
}

// Dashboard - модель страницы /dashboard, зависит от роли пользователя
type Dashboard struct {
	User     *models.User
	Bookings []BookingRow
}

// IsProvider - от роли зависит и заголовок страницы, и набор действий
func (d *Dashboard) IsProvider() bool {
	return d.User.IsProvider()
}
