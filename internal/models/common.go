package models

import (
	"time"
)

// BaseModel - общие поля всех таблиц. ID целочисленный и автоинкрементный,
// потому что маршруты (/book/:id, /accept/:id) адресуют записи по числу.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
