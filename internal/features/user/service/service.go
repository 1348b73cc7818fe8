package service

import (
	"context"
	"errors"

	apperrors "onboarding-backend/internal/common/errors"
	"onboarding-backend/internal/common/logger"
	"onboarding-backend/internal/features/user/models"
	"onboarding-backend/internal/features/user/repository"
)

// Cache is the optional read-through cache in front of the repository.
type Cache interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Set(ctx context.Context, u *models.User) error
	Invalidate(ctx context.Context, email string) error
}

type UserService interface {
	// GetUserByEmail is a pure read: it never creates a record.
	GetUserByEmail(ctx context.Context, email string) (*models.UserResponse, error)
}

type userService struct {
	repo  repository.UserRepository
	cache Cache
}

// NewUserService creates the user lookup service. cache may be nil.
func NewUserService(repo repository.UserRepository, cache Cache) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.UserResponse, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("Missing email")
	}

	if s.cache != nil {
		if user, err := s.cache.GetByEmail(ctx, email); err == nil {
			return models.ToResponse(user), nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User")
		}
		return nil, apperrors.NewPersistenceError("user lookup", err)
	}

	if s.cache != nil {
		// Best effort; a cache failure never fails the read.
		if err := s.cache.Set(ctx, user); err != nil {
			logger.Warn().Err(err).Str("email", email).Msg("user cache set failed")
		}
	}

	return models.ToResponse(user), nil
}
