package services

import "karigar_backend/internal/session"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	IdentityService *IdentityService
	BookingService  *BookingService
	Sessions        *session.Manager
}
