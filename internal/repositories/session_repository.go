package repositories

import (
	"errors"
	"time"

	"karigar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByToken(db *gorm.DB, token string) (*models.Session, error)
	DeleteByToken(db *gorm.DB, token string) error
	DeleteExpired(db *gorm.DB) (int64, error)
}

type SessionRepositoryImpl struct{}

func NewSessionRepository() SessionRepository {
	return &SessionRepositoryImpl{}
}

func (r *SessionRepositoryImpl) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	err := db.First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteByToken удаляет сессию. Отсутствие записи ошибкой не считается:
// logout должен быть идемпотентным.
func (r *SessionRepositoryImpl) DeleteByToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired чистит истекшие сессии, возвращает число удаленных строк
func (r *SessionRepositoryImpl) DeleteExpired(db *gorm.DB) (int64, error) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
