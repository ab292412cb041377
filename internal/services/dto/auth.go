package dto

// LoginRequest - поля формы логина. Регистрация и вход - одна операция:
// незнакомое имя создает пользователя.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=100"`
	Role     string `form:"role" validate:"required,is-user-role"`
	// Category имеет смысл только для провайдеров, для заказчиков игнорируется
	Category string `form:"category" validate:"max=50"`
}
