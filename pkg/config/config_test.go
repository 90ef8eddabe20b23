package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_DB", "")
	t.Setenv("REDIS_CATALOG_TTL", "")
	t.Setenv("ONBOARDING_PHOTO_CONFIDENCE_THRESHOLD", "")
	t.Setenv("ONBOARDING_POINTS_PER_STEP", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0, cfg.Redis.RedisDB)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CatalogTTL)
	assert.Equal(t, 0.6, cfg.Onboarding.PhotoConfidenceThreshold)
	assert.Equal(t, int64(50), cfg.Onboarding.PointsPerStep)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Run("jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("DB_PASSWORD", "pw")

		_, err := Load()
		assert.EqualError(t, err, "missing jwt secret")
	})

	t.Run("database password", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_PASSWORD", "")

		_, err := Load()
		assert.EqualError(t, err, "missing database password")
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)

	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "zero")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		t.Setenv("REDIS_DB", "")
		t.Setenv("ONBOARDING_PHOTO_CONFIDENCE_THRESHOLD", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})
}
