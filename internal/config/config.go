// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/okhotnikov/albumgrab/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// ListenAddress is the address the HTTP server binds to.
	ListenAddress string `mapstructure:"listen_address"`
	// OutputPath is the directory path where converted audio files will be saved.
	OutputPath string `mapstructure:"output_path"`
	// YtdlpPath is the path to the yt-dlp executable used for downloading and extracting audio.
	YtdlpPath string `mapstructure:"ytdlp_path"`
	// FFmpegPath is the path to the ffmpeg executable used by yt-dlp for transcoding.
	FFmpegPath string `mapstructure:"ffmpeg_path"`
	// MaxConcurrentConversions is the maximum number of items converted simultaneously per request.
	MaxConcurrentConversions int64 `mapstructure:"max_concurrent_conversions"`
	// ConversionTimeout is the maximum duration of a single item conversion (e.g., "10m").
	ConversionTimeout string `mapstructure:"conversion_timeout"`
	// ShutdownTimeout is the maximum duration to wait for in-flight requests on shutdown (e.g., "30s").
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
	// WriteTags indicates whether ID3 tags are written to converted files.
	WriteTags bool `mapstructure:"write_tags"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedConversionTimeout is the parsed per-item conversion timeout.
	ParsedConversionTimeout time.Duration
	// ParsedShutdownTimeout is the parsed shutdown timeout.
	ParsedShutdownTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".albumgrab.yaml"

	// DefaultListenAddress is the default HTTP listen address.
	DefaultListenAddress = ":3000"

	// DefaultOutputPath is the default directory for converted audio files.
	DefaultOutputPath = "downloads"

	// DefaultYtdlpPath is the default yt-dlp executable name, resolved via PATH.
	DefaultYtdlpPath = "yt-dlp"

	// DefaultFFmpegPath is the default ffmpeg location.
	DefaultFFmpegPath = "/usr/bin/ffmpeg"

	// DefaultMaxConcurrentConversions is the default per-request conversion worker count.
	DefaultMaxConcurrentConversions = 4

	// DefaultConversionTimeout is the default per-item conversion timeout.
	DefaultConversionTimeout = "10m"

	// DefaultShutdownTimeout is the default graceful shutdown timeout.
	DefaultShutdownTimeout = "30s"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyListenAddress indicates that the HTTP listen address is missing.
	ErrEmptyListenAddress = errors.New("listen address cannot be empty")
	// ErrEmptyOutputPath indicates that the output directory is missing.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	// ErrEmptyYtdlpPath indicates that the yt-dlp executable path is missing.
	ErrEmptyYtdlpPath = errors.New("yt-dlp path cannot be empty")
	// ErrEmptyFFmpegPath indicates that the ffmpeg executable path is missing.
	ErrEmptyFFmpegPath = errors.New("ffmpeg path cannot be empty")
	// ErrInvalidConcurrentConversions indicates that the concurrent conversions count is invalid.
	ErrInvalidConcurrentConversions = errors.New("max concurrent conversions must be a positive integer")
	// ErrInvalidConversionTimeout indicates that the conversion timeout duration is invalid.
	ErrInvalidConversionTimeout = errors.New("conversion_timeout must be positive")
	// ErrInvalidShutdownTimeout indicates that the shutdown timeout duration is invalid.
	ErrInvalidShutdownTimeout = errors.New("shutdown_timeout must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing default config file is tolerated and defaults are applied;
// an explicitly provided file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	v.SetConfigFile(configFilename)

	v.SetDefault("listen_address", DefaultListenAddress)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("ytdlp_path", DefaultYtdlpPath)
	v.SetDefault("ffmpeg_path", DefaultFFmpegPath)
	v.SetDefault("max_concurrent_conversions", DefaultMaxConcurrentConversions)
	v.SetDefault("conversion_timeout", DefaultConversionTimeout)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("write_tags", true)
	v.SetDefault("log_level", DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		// The default config file is optional, an explicitly provided one is not.
		if isExplicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	if strings.TrimSpace(cfg.ListenAddress) == "" {
		return ErrEmptyListenAddress
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	if strings.TrimSpace(cfg.YtdlpPath) == "" {
		return ErrEmptyYtdlpPath
	}

	if strings.TrimSpace(cfg.FFmpegPath) == "" {
		return ErrEmptyFFmpegPath
	}

	if cfg.MaxConcurrentConversions <= 0 {
		return ErrInvalidConcurrentConversions
	}

	cfg.ParsedConversionTimeout, err = time.ParseDuration(cfg.ConversionTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse conversion timeout: %w", err)
	}

	if cfg.ParsedConversionTimeout <= 0 {
		return ErrInvalidConversionTimeout
	}

	cfg.ParsedShutdownTimeout, err = time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse shutdown timeout: %w", err)
	}

	if cfg.ParsedShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}
