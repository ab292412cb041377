package integration_test

import (
	"net/http"
	"net/url"
	"testing"

	"karigar_backend/internal/models"
	"karigar_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestLogin_CreatesUserOnFirstVisit - незнакомое имя создает пользователя
func TestLogin_CreatesUserOnFirstVisit(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.Login(t, ts, "bob", "provider", "Plumber")

	var user models.User
	err := ts.DB.First(&user, "username = ?", "bob").Error
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleProvider, user.Role)
	assert.Equal(t, "Plumber", user.Category)

	var count int64
	ts.DB.Model(&models.User{}).Where("username = ?", "bob").Count(&count)
	assert.EqualValues(t, 1, count, "Должна появиться ровно одна запись")
}

// TestLogin_ExistingUserKeepsStoredRole - повторный логин возвращает
// СОХРАНЕННУЮ запись: роль и категория из формы игнорируются
func TestLogin_ExistingUserKeepsStoredRole(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.Login(t, ts, "bob", "provider", "Plumber")
	ts.ClearCookies(t)

	// Логинимся тем же именем, но с другой ролью и категорией
	helpers.Login(t, ts, "bob", "customer", "Electrician")

	var users []models.User
	err := ts.DB.Where("username = ?", "bob").Find(&users).Error
	assert.NoError(t, err)
	assert.Len(t, users, 1, "Второй записи появиться не должно")
	assert.Equal(t, models.UserRoleProvider, users[0].Role)
	assert.Equal(t, "Plumber", users[0].Category)

	// Сессия при этом открыта под сохраненной ролью провайдера
	res, body := ts.Get(t, "/dashboard")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Incoming Requests")
}

// TestLogin_CategoryIgnoredForCustomers - категория у заказчика не сохраняется
func TestLogin_CategoryIgnoredForCustomers(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.Login(t, ts, "alice", "customer", "Plumber")

	var user models.User
	err := ts.DB.First(&user, "username = ?", "alice").Error
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleCustomer, user.Role)
	assert.Empty(t, user.Category)
}

// TestLogin_MissingUsername - форма без имени отклоняется
func TestLogin_MissingUsername(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	form := url.Values{}
	form.Set("role", "customer")

	res, _ := ts.PostForm(t, "/login", form)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var count int64
	ts.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count, "Пользователь создаваться не должен")
}

// TestLogin_InvalidRole - неизвестная роль отклоняется
func TestLogin_InvalidRole(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	form := url.Values{}
	form.Set("username", "mallory")
	form.Set("role", "admin")

	res, _ := ts.PostForm(t, "/login", form)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestLogout_ClosesSession - после логаута дашборд снова требует логин
func TestLogout_ClosesSession(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.Login(t, ts, "alice", "customer", "")

	res, _ := ts.Get(t, "/logout")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))

	res, _ = ts.Get(t, "/dashboard")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	// Серверная запись сессии тоже удалена
	var count int64
	ts.DB.Model(&models.Session{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

// TestLogout_WithoutSessionIsHarmless - логаут без сессии просто редиректит
func TestLogout_WithoutSessionIsHarmless(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, _ := ts.Get(t, "/logout")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}
