package redis

import (
	"context"
	"encoding/json"
	"time"

	"onboarding-backend/internal/features/user/models"
	rplatform "onboarding-backend/internal/platform/redis"
)

// UserCache provides Redis-based caching for user records, keyed by email.
type UserCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewUserCache(client *rplatform.Client, ttl time.Duration) *UserCache {
	return &UserCache{client: client, ttl: ttl}
}

func (c *UserCache) key(email string) string { return "user:email:" + email }

// Set stores the user under its email key.
func (c *UserCache) Set(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(u.Email), b, c.ttl).Err()
}

// GetByEmail returns the cached user, or an error on miss.
func (c *UserCache) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	v, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Invalidate removes the cached entry for the email.
func (c *UserCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}
