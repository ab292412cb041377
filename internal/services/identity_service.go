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

type IdentityService struct {
	userRepo repositories.UserRepository
}

func NewIdentityService(userRepo repositories.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// ResolveOrCreate - логин и регистрация в одной операции.
// Если имя уже занято, возвращается СОХРАНЕННАЯ запись: роль и категория из
// формы при этом игнорируются. Это осознанное поведение, а не баг.
func (s *IdentityService) ResolveOrCreate(db *gorm.DB, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err == nil {
		metrics.IncLogin(string(user.Role))
		return user, nil
	}
	if err != repositories.ErrUserNotFound {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRole(req.Role)
	user = &models.User{
		Username: req.Username,
		Role:     role,
	}
	if role == models.UserRoleProvider {
		user.Category = req.Category
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user created on first login",
		"user_id", user.ID,
		"role", user.Role,
	)
	metrics.IncLogin(string(user.Role))
	return user, nil
}

// GetByID возвращает пользователя или NotFound
func (s *IdentityService) GetByID(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// ListProviders - все провайдеры для главной страницы, в порядке регистрации
func (s *IdentityService) ListProviders(db *gorm.DB) ([]models.User, error) {
	providers, err := s.userRepo.FindByRole(db, models.UserRoleProvider)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return providers, nil
}
