package grab

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
	"github.com/okhotnikov/albumgrab/internal/client/ytdlp"
	"github.com/okhotnikov/albumgrab/internal/config"
	"github.com/okhotnikov/albumgrab/internal/constants"
	"github.com/okhotnikov/albumgrab/internal/logger"
)

// Service provides the playlist download workflow.
type Service interface {
	// DownloadPlaylist resolves a playlist URL and converts every item to an MP3
	// file in the output directory, returning per-item outcomes after all
	// conversions settle. A non-nil error means nothing was converted
	// (resolution or staging failed).
	DownloadPlaylist(ctx context.Context, playlistURL string) (*BatchResult, error)
}

// ServiceImpl implements the playlist download workflow.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// platformClient resolves playlist URLs into items.
	platformClient youtube.Client
	// converter turns one source locator into an audio file on disk.
	converter ytdlp.Converter
	// tagProcessor writes metadata tags to converted files.
	tagProcessor TagProcessor
	// stats tracks cumulative conversion statistics across requests.
	stats *ServerStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a download service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	platformClient youtube.Client,
	converter ytdlp.Converter,
	tagProcessor TagProcessor,
) Service {
	return &ServiceImpl{
		cfg:            cfg,
		platformClient: platformClient,
		converter:      converter,
		tagProcessor:   tagProcessor,
		stats:          new(ServerStatistics),
		statsMutex:     new(sync.Mutex),
	}
}

// DownloadPlaylist resolves a playlist URL and converts every item to an MP3 file.
func (s *ServiceImpl) DownloadPlaylist(ctx context.Context, playlistURL string) (*BatchResult, error) {
	batch := &BatchResult{
		BatchID:     uuid.New().String(),
		PlaylistURL: playlistURL,
		StartTime:   time.Now(),
	}

	logger.Infof(ctx, "[%s] Downloading playlist: %s", batch.BatchID, playlistURL)

	playlist, err := s.platformClient.GetPlaylist(ctx, playlistURL)
	if err != nil {
		logger.Errorf(ctx, "[%s] Failed to resolve playlist: %v", batch.BatchID, err)

		return nil, err
	}

	batch.PlaylistTitle = playlist.Title

	// Create-if-absent semantics make concurrent requests safe to race here.
	if err = os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		logger.Errorf(ctx, "[%s] Failed to create output path: %v", batch.BatchID, err)

		return nil, fmt.Errorf("failed to create output path '%s': %w", s.cfg.OutputPath, err)
	}

	batch.Items = s.convertItems(ctx, batch.BatchID, playlist)
	batch.EndTime = time.Now()

	s.recordBatch(batch)
	s.logBatchSummary(ctx, batch)

	return batch, nil
}
