package services

import (
	"fmt"
	"testing"

	"karigar_backend/internal/models"
	"karigar_backend/internal/repositories"
	"karigar_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Booking{}, &models.Session{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestResolveOrCreate_CreatesExactlyOneUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository())

	user, err := svc.ResolveOrCreate(db, &dto.LoginRequest{
		Username: "bob", Role: "provider", Category: "Plumber",
	})
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.UserRoleProvider, user.Role)
	assert.Equal(t, "Plumber", user.Category)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveOrCreate_RepeatReturnsSameID(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository())

	first, err := svc.ResolveOrCreate(db, &dto.LoginRequest{Username: "bob", Role: "provider", Category: "Plumber"})
	assert.NoError(t, err)

	// Повторный вызов с ДРУГИМИ ролью и категорией: возвращается
	// сохраненная запись, поля формы игнорируются
	second, err := svc.ResolveOrCreate(db, &dto.LoginRequest{Username: "bob", Role: "customer", Category: "Electrician"})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.UserRoleProvider, second.Role)
	assert.Equal(t, "Plumber", second.Category)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveOrCreate_CategoryOnlyForProviders(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository())

	user, err := svc.ResolveOrCreate(db, &dto.LoginRequest{
		Username: "alice", Role: "customer", Category: "Plumber",
	})
	assert.NoError(t, err)
	assert.Empty(t, user.Category)
}

func TestListProviders_FiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository())

	db.Create(&models.User{Username: "bob", Role: models.UserRoleProvider, Category: "Plumber"})
	db.Create(&models.User{Username: "alice", Role: models.UserRoleCustomer})
	db.Create(&models.User{Username: "carol", Role: models.UserRoleProvider, Category: "Electrician"})

	providers, err := svc.ListProviders(db)
	assert.NoError(t, err)
	assert.Len(t, providers, 2)
	assert.Equal(t, "bob", providers[0].Username)
	assert.Equal(t, "carol", providers[1].Username)
}

func TestGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository())

	_, err := svc.GetByID(db, 9999)
	assert.Error(t, err)
}
