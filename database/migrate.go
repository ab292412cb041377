package database

import (
	"fmt"
	"strings"

	"karigar_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open подключается к базе. Драйвер выбирается по DSN: postgres-схема
// означает postgres, все остальное трактуется как путь к sqlite-файлу
// (дефолт - локальный karigar.db).
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей. Никаких миграций кроме
// начальной схемы у приложения нет.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Session{},
	)
}
