package repositories

import (
	"errors"

	"karigar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername ищет по точному совпадению имени. Уникальность имени схема
// не гарантирует, берется первая (самая ранняя) запись.
func (r *UserRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.Order("id ASC").First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// FindByRole возвращает пользователей роли в порядке вставки, без пагинации
func (r *UserRepositoryImpl) FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := db.Where("role = ?", role).Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
