package app

import (
	"context"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
	"github.com/okhotnikov/albumgrab/internal/client/ytdlp"
	"github.com/okhotnikov/albumgrab/internal/config"
	"github.com/okhotnikov/albumgrab/internal/logger"
	"github.com/okhotnikov/albumgrab/internal/server"
	"github.com/okhotnikov/albumgrab/internal/service/grab"
)

// ExecuteRootCommand is the entry point for the application.
// It builds the service components, verifies that the external tools are
// usable, and serves HTTP until ctx is canceled.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	platformClient, err := youtube.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize playlist client: %v", err)
	}

	converter := ytdlp.NewConverter(cfg)
	if err = converter.CheckTools(ctx); err != nil {
		logger.Fatalf(ctx, "External tools check failed: %v", err)
	}

	tagProcessor := grab.NewTagProcessor()
	downloadService := grab.NewService(cfg, platformClient, converter, tagProcessor)

	if err = server.NewServer(cfg, downloadService).Run(ctx); err != nil {
		logger.Fatalf(ctx, "Server failed: %v", err)
	}
}
