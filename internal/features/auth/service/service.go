package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	apperrors "onboarding-backend/internal/common/errors"
	"onboarding-backend/internal/common/logger"
	"onboarding-backend/internal/features/user/models"
	"onboarding-backend/internal/features/user/repository"
	usersvc "onboarding-backend/internal/features/user/service"
	"onboarding-backend/internal/platform/mailer"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// AuthService issues one-time passcodes over email and verifies them.
type AuthService interface {
	// SendOTP generates a fresh code for the email, creating the user
	// record on first contact, and mails the code. The code is persisted
	// before the mail attempt.
	SendOTP(ctx context.Context, name, phone, email string) error

	// VerifyOTP compares the submitted code against the outstanding one.
	// On match it marks the user verified, clears the code and returns
	// the record.
	VerifyOTP(ctx context.Context, email, code string) (*models.UserResponse, error)
}

type authService struct {
	repo   repository.UserRepository
	mailer mailer.Mailer
	cache  usersvc.Cache

	// overridable for tests
	generateCode func() (string, error)
}

// NewAuthService creates the OTP service. cache may be nil.
func NewAuthService(repo repository.UserRepository, m mailer.Mailer, cache usersvc.Cache) AuthService {
	return &authService{
		repo:         repo,
		mailer:       m,
		cache:        cache,
		generateCode: generateCode,
	}
}

func (s *authService) SendOTP(ctx context.Context, name, phone, email string) error {
	if name == "" || email == "" {
		return apperrors.NewValidationError("Missing fields")
	}

	code, err := s.generateCode()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "OTP generation failed")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// Lazy creation on first contact; no separate registration step.
		user = &models.User{Name: name, Phone: phone, Email: email}
	case err != nil:
		return apperrors.NewPersistenceError("user lookup", err)
	}

	// A new code unconditionally replaces any outstanding one.
	user.OTP = code

	if err := s.repo.Save(ctx, user); err != nil {
		return apperrors.NewPersistenceError("user save", err)
	}
	s.invalidate(ctx, email)

	subject := "Your OTP Code"
	body := fmt.Sprintf("Hello %s, your OTP is %s.", name, code)
	if err := s.mailer.Send(email, subject, body); err != nil {
		// The code is already persisted; the caller learns the mail
		// stage failed, not the issue itself.
		return apperrors.NewDependencyError("send OTP email", err)
	}

	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) (*models.UserResponse, error) {
	if email == "" || code == "" {
		return nil, apperrors.NewValidationError("Missing fields")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same answer as a wrong code, to avoid account enumeration.
			return nil, apperrors.NewAuthenticationError("Invalid OTP")
		}
		return nil, apperrors.NewPersistenceError("user lookup", err)
	}

	// Exact string comparison; "012345" never matches 12345.
	if user.OTP == "" || user.OTP != code {
		return nil, apperrors.NewAuthenticationError("Invalid OTP")
	}

	user.Verified = true
	user.OTP = ""
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, apperrors.NewPersistenceError("user save", err)
	}
	s.invalidate(ctx, email)

	return models.ToResponse(user), nil
}

func (s *authService) invalidate(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, email); err != nil {
		logger.Warn().Err(err).Str("email", email).Msg("user cache invalidate failed")
	}
}

// generateCode draws a uniform 6-digit numeric code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}
