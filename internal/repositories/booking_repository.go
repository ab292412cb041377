package repositories

import (
	"errors"

	"karigar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id uint) (*models.Booking, error)
	FindByCustomer(db *gorm.DB, customerID uint) ([]models.Booking, error)
	FindByProvider(db *gorm.DB, providerID uint) ([]models.Booking, error)
	UpdateStatus(db *gorm.DB, id uint, status models.BookingStatus) error
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindByCustomer - заявки, созданные заказчиком, в порядке создания
func (r *BookingRepositoryImpl) FindByCustomer(db *gorm.DB, customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("customer_id = ?", customerID).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByProvider - заявки, адресованные провайдеру, в порядке создания
func (r *BookingRepositoryImpl) FindByProvider(db *gorm.DB, providerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("provider_id = ?", providerID).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.BookingStatus) error {
	result := db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
