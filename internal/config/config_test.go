package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ServerPort:      "8080",
		DiagStepDelay:   1500 * time.Millisecond,
		DiagErrorRate:   0.2,
		DiagWarningRate: 0.2,
		UploadTick:      200 * time.Millisecond,
		QROrigin:        "http://localhost:8080",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("empty port", func(t *testing.T) {
		cfg := validConfig()
		cfg.ServerPort = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("outcome rates must sum to at most one", func(t *testing.T) {
		cfg := validConfig()
		cfg.DiagErrorRate = 0.7
		cfg.DiagWarningRate = 0.5
		require.Error(t, cfg.Validate())
	})

	t.Run("negative rates are rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.DiagErrorRate = -0.1
		require.Error(t, cfg.Validate())
	})

	t.Run("step delay must be positive", func(t *testing.T) {
		cfg := validConfig()
		cfg.DiagStepDelay = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("qr origin must be http or https", func(t *testing.T) {
		cfg := validConfig()
		cfg.QROrigin = "ftp://example.com"
		require.Error(t, cfg.Validate())
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 100, cfg.RateLimitRPM)
	require.Equal(t, 10, cfg.ExportRateLimitRPM)
	require.Equal(t, 1500*time.Millisecond, cfg.DiagStepDelay)
	require.Equal(t, 0.2, cfg.DiagErrorRate)
	require.Equal(t, 0.2, cfg.DiagWarningRate)
}
