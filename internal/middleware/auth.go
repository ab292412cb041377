package middleware

import (
	"errors"
	"net/http"

	"karigar_backend/internal/logger"
	"karigar_backend/internal/models"
	"karigar_backend/internal/session"
	"karigar_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionMiddleware - middleware разрешения сессии по cookie.
// Не прерывает запрос: страницы вроде главной работают и без сессии,
// просто показывают меньше. Проверку наличия делают RequireSession/RequireRole.
func SessionMiddleware(sessions *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			c.Next()
			return
		}

		db := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		sess, err := sessions.Resolve(db, cookie)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) && !errors.Is(err, session.ErrExpired) {
				logger.CtxWithError(c.Request.Context(), "session resolve failed", err)
			}
			c.Next()
			return
		}

		// Сохраняем сессию в контекст
		c.Set("userID", sess.UserID)
		c.Set("role", sess.Role)
		c.Set(string(contextkeys.SessionContextKey), sess)

		ctx := logger.WithUserID(c.Request.Context(), sess.Token[:8])
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireSession - страницы, требующие логина, отправляют гостя на /login
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("userID"); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole - ограничение по роли. Несоответствие роли трактуется как
// отсутствие подходящего логина, а не как запрет: редирект на /login.
func RequireRole(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok || role != requiredRole {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
