package models

import "time"

// Session - серверная часть браузерной сессии. В cookie уезжает только
// подписанный токен, {user_id, role} живут здесь.
type Session struct {
	BaseModel
	Token     string    `gorm:"size:64;not null;uniqueIndex"`
	UserID    uint      `gorm:"not null;index"`
	Role      UserRole  `gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// Expired - срок жизни сессии истек
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
