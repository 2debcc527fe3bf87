package ytdlp

//go:generate $MOCKGEN -source=converter.go -destination=mocks/converter_mock.go

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/okhotnikov/albumgrab/internal/config"
	"github.com/okhotnikov/albumgrab/internal/logger"
	"github.com/okhotnikov/albumgrab/internal/utils"
)

// Converter defines the interface for converting a media source to an audio file.
type Converter interface {
	// ConvertToAudio downloads the media behind sourceURL and writes an MP3 file
	// at destinationPath, overwriting an existing file.
	ConvertToAudio(ctx context.Context, sourceURL, destinationPath string) error
	// CheckTools verifies that the configured yt-dlp and ffmpeg executables are usable.
	CheckTools(ctx context.Context) error
}

// ConverterImpl implements the Converter interface by invoking the yt-dlp executable.
type ConverterImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
}

// maxToolOutputLength limits how much of the tool's combined output ends up in error messages.
const maxToolOutputLength = 2048

// NewConverter creates and returns a new instance of ConverterImpl.
func NewConverter(cfg *config.Config) Converter {
	return &ConverterImpl{cfg: cfg}
}

// ConvertToAudio downloads the media behind sourceURL and writes an MP3 file at destinationPath.
// Failures are not retried; on failure a partial file may remain at the destination.
func (c *ConverterImpl) ConvertToAudio(ctx context.Context, sourceURL, destinationPath string) error {
	args := c.buildArgs(sourceURL, destinationPath)

	logger.Debugf(ctx, "Running converter: %s %s", c.cfg.YtdlpPath, strings.Join(args, " "))

	//nolint:gosec // The executable path comes from validated configuration.
	cmd := exec.CommandContext(ctx, c.cfg.YtdlpPath, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w for '%s': %w", ErrConversion, sourceURL, ctxErr)
		}

		return fmt.Errorf("%w for '%s': %w: %s", ErrConversion, sourceURL, err, trimToolOutput(output))
	}

	// The tool exiting cleanly without writing the file still counts as a failure.
	exists, err := utils.IsFileExist(destinationPath)
	if err != nil {
		return fmt.Errorf("failed to check output file '%s': %w", destinationPath, err)
	}

	if !exists {
		return fmt.Errorf("%w: '%s'", ErrNoOutputFile, destinationPath)
	}

	return nil
}

// CheckTools verifies that the configured yt-dlp and ffmpeg executables are usable.
// It is called once at startup so a misconfigured environment fails fast
// instead of failing every conversion.
func (c *ConverterImpl) CheckTools(ctx context.Context) error {
	//nolint:gosec // The executable path comes from validated configuration.
	cmd := exec.CommandContext(ctx, c.cfg.YtdlpPath, "--version")

	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("%w at '%s': %w", ErrYtdlpNotFound, c.cfg.YtdlpPath, err)
	}

	logger.Infof(ctx, "Using yt-dlp %s at '%s'", strings.TrimSpace(string(output)), c.cfg.YtdlpPath)

	if err = c.checkFFmpeg(); err != nil {
		return err
	}

	logger.Infof(ctx, "Using ffmpeg at '%s'", c.cfg.FFmpegPath)

	return nil
}

func (c *ConverterImpl) checkFFmpeg() error {
	ffmpegPath := c.cfg.FFmpegPath

	// A bare command name is resolved through PATH, anything else must exist on disk.
	if filepath.Base(ffmpegPath) == ffmpegPath {
		if _, err := exec.LookPath(ffmpegPath); err != nil {
			return fmt.Errorf("%w: %w", ErrFFmpegNotFound, err)
		}

		return nil
	}

	exists, err := utils.IsFileExist(ffmpegPath)
	if err != nil {
		return fmt.Errorf("failed to check ffmpeg path '%s': %w", ffmpegPath, err)
	}

	if !exists {
		return fmt.Errorf("%w: '%s'", ErrFFmpegNotFound, ffmpegPath)
	}

	return nil
}

// buildArgs assembles the yt-dlp invocation for a single item conversion.
func (c *ConverterImpl) buildArgs(sourceURL, destinationPath string) []string {
	return []string{
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"--ffmpeg-location", c.cfg.FFmpegPath,
		"--force-overwrites",
		"--no-playlist",
		"--output", destinationPath,
		sourceURL,
	}
}

// trimToolOutput compacts tool output for inclusion in error messages.
func trimToolOutput(output []byte) string {
	trimmed := strings.TrimSpace(string(output))
	if len(trimmed) > maxToolOutputLength {
		trimmed = "..." + trimmed[len(trimmed)-maxToolOutputLength:]
	}

	return trimmed
}
