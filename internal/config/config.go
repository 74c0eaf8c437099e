package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	RequestTimeout     time.Duration
	CORSOrigins        []string
	RateLimitRPM       int
	ExportRateLimitRPM int

	// Diagnostic simulator
	DiagStepDelay   time.Duration
	DiagErrorRate   float64
	DiagWarningRate float64

	// Simulated upload progress
	UploadTick time.Duration

	// Public origin used in QR payload URLs
	QROrigin string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		ServerReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		ServerWriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 30*time.Second),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:       getInt("RATE_LIMIT_RPM", 100),
		ExportRateLimitRPM: getInt("EXPORT_RATE_LIMIT_RPM", 10),
		DiagStepDelay:      getDuration("DIAG_STEP_DELAY", 1500*time.Millisecond),
		DiagErrorRate:      getFloat("DIAG_ERROR_RATE", 0.2),
		DiagWarningRate:    getFloat("DIAG_WARNING_RATE", 0.2),
		UploadTick:         getDuration("UPLOAD_TICK", 200*time.Millisecond),
		QROrigin:           getEnv("QR_ORIGIN", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.DiagErrorRate < 0 || c.DiagWarningRate < 0 || c.DiagErrorRate+c.DiagWarningRate > 1 {
		return fmt.Errorf("DIAG_ERROR_RATE and DIAG_WARNING_RATE must be non-negative and sum to at most 1")
	}

	if c.DiagStepDelay <= 0 {
		return fmt.Errorf("DIAG_STEP_DELAY must be positive")
	}

	if c.UploadTick <= 0 {
		return fmt.Errorf("UPLOAD_TICK must be positive")
	}

	if !strings.HasPrefix(c.QROrigin, "http://") && !strings.HasPrefix(c.QROrigin, "https://") {
		return fmt.Errorf("QR_ORIGIN must be an http(s) origin")
	}

	return nil
}

func getEnv(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
