package session

import (
	"errors"
	"fmt"
	"time"

	"karigar_backend/internal/models"
	"karigar_backend/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNoSession - cookie отсутствует, невалиден или сессия не найдена
	ErrNoSession = errors.New("session: no active session")
	// ErrExpired - сессия найдена, но срок жизни истек
	ErrExpired = errors.New("session: expired")
)

// Manager управляет жизненным циклом браузерных сессий.
// Состояние сессии ({user_id, role}) живет на сервере, в таблице sessions.
// В cookie уезжает только JWT с идентификатором сессии, подписанный
// секретом из конфига - подделать или переписать его без секрета нельзя.
type Manager struct {
	repo   repositories.SessionRepository
	secret []byte
	ttl    time.Duration
}

func NewManager(repo repositories.SessionRepository, secret string, ttl time.Duration) *Manager {
	return &Manager{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Open создает сессию для пользователя и возвращает значение cookie
func (m *Manager) Open(db *gorm.DB, user *models.User) (string, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.repo.Create(db, session); err != nil {
		return "", fmt.Errorf("session: create: %w", err)
	}

	cookie, err := m.sign(session)
	if err != nil {
		return "", fmt.Errorf("session: sign cookie: %w", err)
	}
	return cookie, nil
}

// Resolve проверяет подпись cookie и загружает сессию из хранилища.
// Истекшие сессии сразу удаляются.
func (m *Manager) Resolve(db *gorm.DB, cookie string) (*models.Session, error) {
	token, err := m.verify(cookie)
	if err != nil {
		return nil, ErrNoSession
	}

	session, err := m.repo.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("session: lookup: %w", err)
	}

	if session.Expired() {
		_ = m.repo.DeleteByToken(db, session.Token)
		return nil, ErrExpired
	}

	return session, nil
}

// Close удаляет сессию (logout). Повторный вызов не ошибка.
func (m *Manager) Close(db *gorm.DB, cookie string) error {
	token, err := m.verify(cookie)
	if err != nil {
		return nil
	}
	return m.repo.DeleteByToken(db, token)
}

// CleanupExpired чистит истекшие сессии, возвращает число удаленных
func (m *Manager) CleanupExpired(db *gorm.DB) (int64, error) {
	return m.repo.DeleteExpired(db)
}

// TTL возвращает срок жизни сессии (нужен для Max-Age cookie)
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) sign(session *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.Token,
		"exp": session.ExpiresAt.Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) verify(cookie string) (string, error) {
	token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid sid in session token")
	}
	return sid, nil
}
