package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("OFFICE_LATITUDE", "")
	t.Setenv("OFFICE_LONGITUDE", "")
	t.Setenv("OFFICE_RADIUS_METERS", "")
	t.Setenv("TRACKING_REQUIRED", "")
	t.Setenv("TRACKING_TTL", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.InDelta(t, -6.251426, cfg.Office.Latitude, 1e-9)
	assert.InDelta(t, 107.113798, cfg.Office.Longitude, 1e-9)
	assert.Equal(t, float64(100), cfg.Office.RadiusMeters)
	assert.True(t, cfg.Tracking.Required)
	assert.NotNil(t, cfg.Office.Timezone)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("latitude di luar jangkauan harus ditolak", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("OFFICE_LATITUDE", "95.1")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("radius nol harus ditolak", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("OFFICE_LATITUDE", "")
		t.Setenv("OFFICE_RADIUS_METERS", "0")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timezone tidak dikenal harus ditolak", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("OFFICE_RADIUS_METERS", "")
		t.Setenv("OFFICE_TIMEZONE", "Mars/Olympus")

		_, err := Load()
		assert.Error(t, err)
	})
}
