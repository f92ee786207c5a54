package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roomierooms/backend/internal/model"
	"github.com/roomierooms/backend/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureProfile создаёт или обновляет локальный профиль по claims токена.
// Identity-провайдер внешний, профиль здесь — только зеркало его данных
func (s *UserService) EnsureProfile(ctx context.Context, id uuid.UUID, email, displayName, role string) (*model.User, error) {
	user := &model.User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		IsStaff:     role == model.RoleStaff,
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	if existing == nil {
		s.logger.Info("Profile created",
			zap.String("user_id", id.String()),
			zap.Bool("is_staff", user.IsStaff),
		)
	}

	return user, nil
}
