package models

type Booking struct {
	BaseModel
	CustomerID uint          `gorm:"not null;index"`
	ProviderID uint          `gorm:"not null;index"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'Pending'"`
}
