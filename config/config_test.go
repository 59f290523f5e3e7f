package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 5000, cfg.Packing.TargetCapacityMeters)
		assert.Nil(t, cfg.Packing.StandardReelSizes)
		assert.False(t, cfg.Packing.ContinuousFallback)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "bagging_service", cfg.Database.DatabaseName)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("TARGET_CAPACITY_METERS", "4000")
		_ = os.Setenv("STANDARD_REEL_SIZES", "4000,2000,1000")
		_ = os.Setenv("CONTINUOUS_FALLBACK", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://db:27017")
		_ = os.Setenv("MONGODB_DATABASE", "bags")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 4000, cfg.Packing.TargetCapacityMeters)
		assert.Equal(t, []int{4000, 2000, 1000}, cfg.Packing.StandardReelSizes)
		assert.True(t, cfg.Packing.ContinuousFallback)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "bags", cfg.Database.DatabaseName)
		assert.True(t, cfg.Database.Enabled)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("TARGET_CAPACITY_METERS", "invalid")
		_ = os.Setenv("CONTINUOUS_FALLBACK", "invalid")
		_ = os.Setenv("STANDARD_REEL_SIZES", "a,-5,0")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, 5000, cfg.Packing.TargetCapacityMeters)
		assert.False(t, cfg.Packing.ContinuousFallback)
		assert.Empty(t, cfg.Packing.StandardReelSizes)
	})

	t.Run("appends custom CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://floor.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://floor.example.com")
	})
}
