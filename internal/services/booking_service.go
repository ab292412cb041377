package services

import (
	"karigar_backend/internal/logger"
	"karigar_backend/internal/metrics"
	"karigar_backend/internal/models"
	"karigar_backend/internal/repositories"
	"karigar_backend/internal/services/dto"
	"karigar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// Create создает заявку со статусом Pending.
// Роли обеих сторон проверяются здесь, чтобы в таблице bookings не появлялись
// ссылки на несуществующих или неподходящих пользователей. Дубликаты заявок
// между той же парой допускаются.
func (s *BookingService) Create(db *gorm.DB, customerID, providerID uint) (*models.Booking, error) {
	provider, err := s.userRepo.FindByID(db, providerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !provider.IsProvider() {
		return nil, apperrors.ErrInvalidOperation("booking", "Booking target is not a provider")
	}

	customer, err := s.userRepo.FindByID(db, customerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !customer.IsCustomer() {
		return nil, apperrors.ErrInvalidUserRole
	}

	booking := &models.Booking{
		CustomerID: customerID,
		ProviderID: providerID,
		Status:     models.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("booking created",
		"booking_id", booking.ID,
		"customer_id", customerID,
		"provider_id", providerID,
	)
	metrics.IncBookingCreated()
	return booking, nil
}

// Accept переводит заявку Pending -> Accepted.
// Принять может только провайдер, которому заявка адресована. Повторный
// accept уже принятой заявки не ошибка: статус просто остается Accepted.
func (s *BookingService) Accept(db *gorm.DB, bookingID, callerID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if err == repositories.ErrBookingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if booking.ProviderID != callerID {
		return nil, apperrors.NewForbiddenError("Only the targeted provider may accept this booking")
	}

	if booking.Status == models.BookingStatusAccepted {
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(db, bookingID, models.BookingStatusAccepted); err != nil {
		if err == repositories.ErrBookingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	booking.Status = models.BookingStatusAccepted

	logger.Info("booking accepted",
		"booking_id", booking.ID,
		"provider_id", callerID,
	)
	metrics.IncBookingAccepted()
	return booking, nil
}

// Dashboard собирает модель страницы /dashboard для пользователя.
// Заказчику показываются его заявки с именами провайдеров, провайдеру -
// входящие заявки с именами заказчиков. Порядок - порядок создания.
func (s *BookingService) Dashboard(db *gorm.DB, userID uint) (*dto.Dashboard, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	var bookings []models.Booking
	if user.IsCustomer() {
		bookings, err = s.bookingRepo.FindByCustomer(db, userID)
	} else {
		bookings, err = s.bookingRepo.FindByProvider(db, userID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.BookingRow, 0, len(bookings))
	for _, b := range bookings {
		counterpartyID := b.ProviderID
		if user.IsProvider() {
			counterpartyID = b.CustomerID
		}

		// Роли валидируются при создании заявки, поэтому "повисшая" ссылка
		// означает поврежденное хранилище, а не ошибку пользователя.
		counterparty, err := s.userRepo.FindByID(db, counterpartyID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		rows = append(rows, dto.BookingRow{
			ID:           b.ID,
			Counterparty: counterparty.Username,
			Status:       b.Status,
		})
	}

	return &dto.Dashboard{
		User:     user,
		Bookings: rows,
	}, nil
}
