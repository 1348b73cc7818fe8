package repository

import (
	"context"
	"errors"

	"onboarding-backend/internal/features/user/models"
)

// ErrNotFound is returned when no user exists for the given email.
var ErrNotFound = errors.New("user not found")

// UserRepository is the persistence boundary for user records.
type UserRepository interface {
	// FindByEmail returns the stored record or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Save upserts the record keyed by email and backfills the generated
	// ID on insert.
	Save(ctx context.Context, user *models.User) error
}
