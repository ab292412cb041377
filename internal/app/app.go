package app

import (
	"context"
	"fmt"
	"time"

	"karigar_backend/database"
	"karigar_backend/internal/config"
	"karigar_backend/internal/handlers"
	"karigar_backend/internal/logger"
	"karigar_backend/internal/metrics"
	"karigar_backend/internal/middleware"
	"karigar_backend/internal/repositories"
	"karigar_backend/internal/routes"
	"karigar_backend/internal/services"
	"karigar_backend/internal/session"
	"karigar_backend/internal/validator"
	"karigar_backend/internal/web"
	"karigar_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "dsn", cfg.Database.DSN)
	gormDB, err := database.Open(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}
	logger.Info("AutoMigrate completed")

	ginRouter := SetupRouter(cfg, gormDB)

	// Фоновая чистка истекших сессий
	sessionWorker := workers.NewSessionWorker(
		gormDB,
		repositories.NewSessionRepository(),
		time.Duration(cfg.Session.CleanupMinutes)*time.Minute,
	)
	sessionWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный gin.Engine приложения. Вынесен отдельно,
// чтобы тестовый сервер мог поднять то же приложение поверх httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	metrics.Register()

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB, serviceContainer.Sessions)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	bookingRepo := repositories.NewBookingRepository()
	sessionRepo := repositories.NewSessionRepository()

	// --- Инициализация сервисов ---
	identityService := services.NewIdentityService(userRepo)
	bookingService := services.NewBookingService(bookingRepo, userRepo)
	sessions := newSessionManager(cfg, sessionRepo)

	return &services.ServiceContainer{
		IdentityService: identityService,
		BookingService:  bookingService,
		Sessions:        sessions,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(
			baseHandler,
			container.IdentityService,
			container.Sessions,
			cfg.Session.CookieName,
		),
		HomeHandler:    handlers.NewHomeHandler(baseHandler, container.IdentityService),
		BookingHandler: handlers.NewBookingHandler(baseHandler, container.BookingService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, sessions *session.Manager) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.SessionMiddleware(sessions, cfg.Session.CookieName))

	router.SetHTMLTemplate(web.Templates())

	return router
}

func newSessionManager(cfg *config.Config, repo repositories.SessionRepository) *session.Manager {
	return session.NewManager(
		repo,
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
	)
}
