package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	TokenTTL        time.Duration
	StepThreshold   float64       // magnitude threshold for step detection
	StepInterval    time.Duration // debounce window between accepted steps
	CollectInterval time.Duration // background collector polling period
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/walks/walks.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		TokenTTL:        24 * time.Hour,
		StepThreshold:   envFloat("STEP_THRESHOLD", 1.2),
		StepInterval:    envMillis("STEP_INTERVAL_MS", 300*time.Millisecond),
		CollectInterval: envMillis("COLLECT_INTERVAL_MS", time.Second),
	}
}

func envFloat(key string, def float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func envMillis(key string, def time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return time.Duration(v) * time.Millisecond
		}
	}
	return def
}
