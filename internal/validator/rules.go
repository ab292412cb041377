package validator

import (
	"log"

	"karigar_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': Проверяет, что роль пользователя валидна
	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}
	return models.UserRole(value).Valid()
}
