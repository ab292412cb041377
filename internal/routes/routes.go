package routes

import (
	"karigar_backend/internal/handlers"
	"karigar_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers, // <-- Принимаем ГОТОВЫЕ хэндлеры
) {
	appHandlers.HomeHandler.RegisterRoutes(ginRouter)
	appHandlers.AuthHandler.RegisterRoutes(ginRouter)
	appHandlers.BookingHandler.RegisterRoutes(ginRouter)

	// Prometheus exposition
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("HTTP routes registered")
}
