package handlers

import (
	"net/http"

	"karigar_backend/internal/services"
	"karigar_backend/internal/services/dto"
	"karigar_backend/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	identityService *services.IdentityService
	sessions        *session.Manager
	cookieName      string
}

func NewAuthHandler(
	base *BaseHandler,
	identityService *services.IdentityService,
	sessions *session.Manager,
	cookieName string,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:     base,
		identityService: identityService,
		sessions:        sessions,
		cookieName:      cookieName,
	}
}

// RegisterRoutes регистрирует маршруты логина/логаута
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// ShowLogin рендерит форму логина
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login - вход и неявная регистрация одной операцией.
// Незнакомое имя создает пользователя с ролью и категорией из формы,
// знакомое - возвращает сохраненную запись (поля формы игнорируются).
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.identityService.ResolveOrCreate(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	cookie, err := h.sessions.Open(db, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(h.cookieName, cookie, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout закрывает сессию и возвращает на главную
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		db := h.GetDB(c)
		if err := h.sessions.Close(db, cookie); err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
