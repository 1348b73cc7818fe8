package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "onboarding", cfg.Mongo.Database)
	assert.False(t, cfg.SMTP.Disabled)
	assert.NotEmpty(t, cfg.Server.CORSAllowedOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("SMTP_DISABLED", "true")
	t.Setenv("RZP_KEY_SECRET", "s3cret")
	t.Setenv("USER_CACHE_TTL", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.SMTP.Disabled)
	assert.Equal(t, "s3cret", cfg.Razorpay.KeySecret)
	assert.Equal(t, "2m0s", cfg.Redis.CacheTTL.String())
}
