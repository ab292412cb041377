package helpers

import (
	"net/http"
	"net/url"
	"testing"

	"karigar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в БД
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Username, err)
	}
	return user
}

// CreateBooking создает заявку напрямую в БД
func CreateBooking(t *testing.T, db *gorm.DB, customerID, providerID uint, status models.BookingStatus) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		CustomerID: customerID,
		ProviderID: providerID,
		Status:     status,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("Не удалось создать заявку: %v", err)
	}
	return booking
}

// Login логинит клиента тестового сервера через форму /login
// и проверяет редирект на дашборд
func Login(t *testing.T, ts *TestServer, username, role, category string) {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("role", role)
	if category != "" {
		form.Set("category", category)
	}

	res, body := ts.PostForm(t, "/login", form)
	assert.Equal(t, http.StatusFound, res.StatusCode, "Логин должен отвечать редиректом. Ответ: "+body)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))
}

// CountBookings возвращает число заявок в БД
func CountBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		t.Fatalf("Не удалось посчитать заявки: %v", err)
	}
	return count
}
