package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// ErrInvalidUserRole - используется, когда операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Operation is not allowed for this user role",
	http.StatusBadRequest,
)

// ErrSessionExpired - сессия существует, но ее срок жизни истек.
var ErrSessionExpired = New(
	CodeSessionExpired,
	"auth",
	"Session has expired, please log in again",
	http.StatusUnauthorized,
)
