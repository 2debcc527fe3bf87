package youtube

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	yt "github.com/kkdai/youtube/v2"

	"github.com/okhotnikov/albumgrab/internal/config"
	"github.com/okhotnikov/albumgrab/internal/logger"
	http_transport "github.com/okhotnikov/albumgrab/internal/transport/http"
)

// Client defines the interface for resolving playlists on the streaming platform.
type Client interface {
	// GetPlaylist resolves a playlist URL into its metadata and ordered items.
	GetPlaylist(ctx context.Context, playlistURL string) (*Playlist, error)
}

// ClientImpl implements the Client interface on top of the platform metadata API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// ytClient is the metadata API client.
	ytClient *yt.Client
	// playlistsCache caches resolved playlists to avoid re-fetching metadata
	// when the same playlist is requested repeatedly.
	playlistsCache *lru.Cache[string, *Playlist]
}

const (
	// watchURLFormat is the canonical source locator for a single item.
	watchURLFormat = "https://www.youtube.com/watch?v=%s"

	// playlistsCacheSize defines the maximum number of resolved playlists to cache.
	// A playlist entry is small, so this covers far more playlists than a single
	// deployment is realistically asked for.
	playlistsCacheSize = 256
)

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) (Client, error) {
	playlistsCache, err := lru.New[string, *Playlist](playlistsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlists cache: %w", err)
	}

	httpClient := &http.Client{
		Timeout: http_transport.DefaultTimeout,
		Transport: http_transport.NewLogTransport(
			http_transport.NewUserAgentInjector(http.DefaultTransport, http_transport.DefaultUserAgent),
			http_transport.DefaultMaxLogLength,
		),
	}

	return &ClientImpl{
		cfg:            cfg,
		ytClient:       &yt.Client{HTTPClient: httpClient},
		playlistsCache: playlistsCache,
	}, nil
}

// GetPlaylist resolves a playlist URL into its metadata and ordered items.
// Resolution failures are not retried; the underlying error message is preserved.
func (c *ClientImpl) GetPlaylist(ctx context.Context, playlistURL string) (*Playlist, error) {
	playlistURL = strings.TrimSpace(playlistURL)
	if playlistURL == "" {
		return nil, ErrEmptyPlaylistURL
	}

	if cached, ok := c.playlistsCache.Get(playlistURL); ok {
		logger.Debugf(ctx, "Playlist '%s' resolved from cache (%d items)", playlistURL, len(cached.Items))

		return cached, nil
	}

	resolved, err := c.ytClient.GetPlaylistContext(ctx, playlistURL)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrPlaylistResolution, playlistURL, err)
	}

	playlist := convertPlaylist(resolved)
	c.playlistsCache.Add(playlistURL, playlist)

	logger.Infof(ctx, "Resolved playlist '%s': %d items", playlist.Title, len(playlist.Items))

	return playlist, nil
}

// convertPlaylist maps the platform's playlist representation to the internal model,
// preserving item order.
func convertPlaylist(resolved *yt.Playlist) *Playlist {
	items := make([]*PlaylistItem, 0, len(resolved.Videos))

	for _, entry := range resolved.Videos {
		if entry == nil {
			continue
		}

		items = append(items, &PlaylistItem{
			ID:       entry.ID,
			Title:    entry.Title,
			Author:   entry.Author,
			URL:      watchURL(entry.ID),
			Duration: entry.Duration,
		})
	}

	return &Playlist{
		ID:     resolved.ID,
		Title:  resolved.Title,
		Author: resolved.Author,
		Items:  items,
	}
}

// watchURL builds the canonical source locator for an item ID.
func watchURL(itemID string) string {
	return fmt.Sprintf(watchURLFormat, itemID)
}
