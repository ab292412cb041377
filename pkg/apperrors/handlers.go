package apperrors

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке (для JSON-клиентов)
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin.
// Браузерным клиентам рендерится error.html, JSON-клиентам отдается ErrorResponse.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		// Если это не AppError, оборачиваем в InternalError
		appErr = InternalError(err)
		if !h.Debug {
			// В продакшене скрываем детали
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	// Логирование
	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	// Отправка ответа
	if wantsJSON(c) {
		c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
		return
	}
	c.HTML(appErr.HTTPCode, "error.html", gin.H{
		"Code":    appErr.Code,
		"Message": appErr.Message,
	})
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: true}
	handler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// wantsJSON - браузеры шлют text/html в Accept, для них рендерим страницу
func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	return false
}
