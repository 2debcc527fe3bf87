package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// validConfig returns a configuration that passes validation.
func validConfig() *Config {
	return &Config{
		ListenAddress:            ":3000",
		OutputPath:               "downloads",
		YtdlpPath:                "yt-dlp",
		FFmpegPath:               "/usr/bin/ffmpeg",
		MaxConcurrentConversions: 4,
		ConversionTimeout:        "10m",
		ShutdownTimeout:          "30s",
		WriteTags:                true,
		LogLevel:                 "info",
	}
}

// TestLoadConfig tests loading configuration from a file.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("explicit file with overrides", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "albumgrab.yaml")
		content := []byte("listen_address: \":8080\"\noutput_path: music\nmax_concurrent_conversions: 2\n")
		require.NoError(t, os.WriteFile(configPath, content, 0o644))

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.ListenAddress)
		assert.Equal(t, "music", cfg.OutputPath)
		assert.Equal(t, int64(2), cfg.MaxConcurrentConversions)
		// Unset keys fall back to defaults.
		assert.Equal(t, DefaultFFmpegPath, cfg.FFmpegPath)
		assert.Equal(t, DefaultConversionTimeout, cfg.ConversionTimeout)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file fails", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("listen_address: [unclosed"), 0o644))

		_, err := LoadConfig(configPath)
		require.Error(t, err)
	})
}

// TestValidateConfig tests configuration validation and derived fields.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		require.NoError(t, ValidateConfig(cfg))

		assert.Equal(t, 10*time.Minute, cfg.ParsedConversionTimeout)
		assert.Equal(t, 30*time.Second, cfg.ParsedShutdownTimeout)
		assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
	})

	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "empty listen address",
			mutate:   func(c *Config) { c.ListenAddress = " " },
			expected: ErrEmptyListenAddress,
		},
		{
			name:     "empty output path",
			mutate:   func(c *Config) { c.OutputPath = "" },
			expected: ErrEmptyOutputPath,
		},
		{
			name:     "empty ytdlp path",
			mutate:   func(c *Config) { c.YtdlpPath = "" },
			expected: ErrEmptyYtdlpPath,
		},
		{
			name:     "empty ffmpeg path",
			mutate:   func(c *Config) { c.FFmpegPath = "" },
			expected: ErrEmptyFFmpegPath,
		},
		{
			name:     "zero concurrency",
			mutate:   func(c *Config) { c.MaxConcurrentConversions = 0 },
			expected: ErrInvalidConcurrentConversions,
		},
		{
			name:     "negative conversion timeout",
			mutate:   func(c *Config) { c.ConversionTimeout = "-1m" },
			expected: ErrInvalidConversionTimeout,
		},
		{
			name:     "zero shutdown timeout",
			mutate:   func(c *Config) { c.ShutdownTimeout = "0s" },
			expected: ErrInvalidShutdownTimeout,
		},
		{
			name:     "unknown log level",
			mutate:   func(c *Config) { c.LogLevel = "verbose" },
			expected: ErrUnknownLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			require.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("unparsable conversion timeout", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.ConversionTimeout = "soon"

		require.Error(t, ValidateConfig(cfg))
	})
}
