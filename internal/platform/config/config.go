package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPConfig struct {
	Addr string
}

type NATSConfig struct {
	URL string
}

type UploadConfig struct {
	// StepInterval is the delay between simulated progress steps.
	StepInterval time.Duration
	// StepPercent is the progress increment per step; must divide 100.
	StepPercent int
}

type AppConfig struct {
	ServiceName string
	LogLevel    string
	HTTP        HTTPConfig
	NATS        NATSConfig
	Upload      UploadConfig
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first but never overrides variables already set.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := AppConfig{
		ServiceName: strings.TrimSpace(os.Getenv("SERVICE_NAME")),
		LogLevel:    strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		HTTP: HTTPConfig{
			Addr: strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		},
		NATS: NATSConfig{
			URL: strings.TrimSpace(os.Getenv("NATS_URL")),
		},
		Upload: UploadConfig{
			StepInterval: envDuration("UPLOAD_STEP_INTERVAL", 100*time.Millisecond),
			StepPercent:  envInt("UPLOAD_STEP_PERCENT", 10),
		},
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "studyshare"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Upload.StepPercent <= 0 || 100%cfg.Upload.StepPercent != 0 {
		cfg.Upload.StepPercent = 10
	}
	return cfg, nil
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
