package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	HomeHandler    *HomeHandler
	BookingHandler *BookingHandler
}
