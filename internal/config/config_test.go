package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STEP_THRESHOLD", "STEP_INTERVAL_MS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, 1.2, cfg.StepThreshold)
	assert.Equal(t, 300*time.Millisecond, cfg.StepInterval)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("STEP_THRESHOLD", "1.5")
	t.Setenv("STEP_INTERVAL_MS", "500")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, 1.5, cfg.StepThreshold)
	assert.Equal(t, 500*time.Millisecond, cfg.StepInterval)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("STEP_THRESHOLD", "not-a-number")
	t.Setenv("STEP_INTERVAL_MS", "-100")

	cfg := Load()

	assert.Equal(t, 1.2, cfg.StepThreshold)
	assert.Equal(t, 300*time.Millisecond, cfg.StepInterval)
}
