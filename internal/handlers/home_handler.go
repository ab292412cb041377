package handlers

import (
	"net/http"

	"karigar_backend/internal/models"
	"karigar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	*BaseHandler
	identityService *services.IdentityService
}

func NewHomeHandler(base *BaseHandler, identityService *services.IdentityService) *HomeHandler {
	return &HomeHandler{
		BaseHandler:     base,
		identityService: identityService,
	}
}

// RegisterRoutes регистрирует главную страницу и health-check
func (h *HomeHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/health", h.Health)
}

// Home - список всех провайдеров. Кнопка бронирования показывается только
// залогиненным заказчикам.
func (h *HomeHandler) Home(c *gin.Context) {
	db := h.GetDB(c)

	providers, err := h.identityService.ListProviders(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	isCustomer := false
	if roleVal, exists := c.Get("role"); exists {
		if role, ok := roleVal.(models.UserRole); ok {
			isCustomer = role == models.UserRoleCustomer
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Providers":  providers,
		"IsCustomer": isCustomer,
	})
}

// Health - liveness probe
func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
