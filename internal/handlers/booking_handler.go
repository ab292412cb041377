package handlers

import (
	"net/http"

	"karigar_backend/internal/middleware"
	"karigar_backend/internal/models"
	"karigar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService *services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

// RegisterRoutes регистрирует маршруты, требующие сессии.
// /book доступен только заказчикам, /accept - только провайдерам,
// все остальные уезжают на /login без мутаций хранилища.
func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/dashboard", middleware.RequireSession(), h.Dashboard)
	r.GET("/book/:provider_id", middleware.RequireRole(models.UserRoleCustomer), h.Book)
	r.GET("/accept/:booking_id", middleware.RequireRole(models.UserRoleProvider), h.Accept)
}

// Dashboard - ролезависимая страница: заявки заказчика или входящие
// заявки провайдера
func (h *BookingHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetSessionUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	dashboard, err := h.bookingService.Dashboard(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":       dashboard.User,
		"Bookings":   dashboard.Bookings,
		"IsProvider": dashboard.IsProvider(),
	})
}

// Book создает Pending-заявку от текущего заказчика к провайдеру из URL
func (h *BookingHandler) Book(c *gin.Context) {
	userID, ok := h.GetSessionUserID(c)
	if !ok {
		return
	}

	providerID, err := ParseParamUint(c, "provider_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	if _, err := h.bookingService.Create(db, userID, providerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Accept переводит заявку в Accepted. Принять чужую заявку нельзя.
func (h *BookingHandler) Accept(c *gin.Context) {
	userID, ok := h.GetSessionUserID(c)
	if !ok {
		return
	}

	bookingID, err := ParseParamUint(c, "booking_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	if _, err := h.bookingService.Accept(db, bookingID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
