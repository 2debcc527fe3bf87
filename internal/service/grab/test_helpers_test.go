package grab

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
	mock_youtube "github.com/okhotnikov/albumgrab/internal/client/youtube/mocks"
	mock_ytdlp "github.com/okhotnikov/albumgrab/internal/client/ytdlp/mocks"
	"github.com/okhotnikov/albumgrab/internal/config"
	"github.com/okhotnikov/albumgrab/internal/constants"
)

// testServiceSetup encapsulates common test dependencies and configuration.
type testServiceSetup struct {
	ctrl          *gomock.Controller
	mockClient    *mock_youtube.MockClient
	mockConverter *mock_ytdlp.MockConverter
	tagProcessor  *mockTagProcessor
	service       Service
	config        *config.Config
	tempDir       string
}

// newTestServiceSetup creates a standard test setup with optional config overrides.
func newTestServiceSetup(t *testing.T, configOverrides ...func(*config.Config)) *testServiceSetup {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mock_youtube.NewMockClient(ctrl)
	mockConverter := mock_ytdlp.NewMockConverter(ctrl)
	tagProcessor := new(mockTagProcessor)
	tempDir := t.TempDir()

	cfg := &config.Config{
		OutputPath:               tempDir,
		MaxConcurrentConversions: 1,
		ConversionTimeout:        "10m",
		ShutdownTimeout:          "30s",
		ListenAddress:            ":3000",
		YtdlpPath:                "yt-dlp",
		FFmpegPath:               "/usr/bin/ffmpeg",
		LogLevel:                 "info",
	}
	require.NoError(t, config.ValidateConfig(cfg))

	// Apply overrides.
	for _, override := range configOverrides {
		override(cfg)
	}

	service := NewService(cfg, mockClient, mockConverter, tagProcessor)

	return &testServiceSetup{
		ctrl:          ctrl,
		mockClient:    mockClient,
		mockConverter: mockConverter,
		tagProcessor:  tagProcessor,
		service:       service,
		config:        cfg,
		tempDir:       tempDir,
	}
}

// expectPlaylist makes the platform client resolve any URL to the given playlist.
func (s *testServiceSetup) expectPlaylist(playlist *youtube.Playlist) {
	s.mockClient.EXPECT().
		GetPlaylist(gomock.Any(), gomock.Any()).
		Return(playlist, nil).
		AnyTimes()
}

// expectConversionWritingFile makes the converter write a small file at the destination.
func (s *testServiceSetup) expectConversionWritingFile() {
	s.mockConverter.EXPECT().
		ConvertToAudio(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, destinationPath string) error {
			return os.WriteFile(destinationPath, []byte("audio"), constants.DefaultFilePermissions)
		}).
		AnyTimes()
}

// makeTestPlaylist builds a playlist with n sequentially numbered items.
func makeTestPlaylist(n int) *youtube.Playlist {
	items := make([]*youtube.PlaylistItem, 0, n)

	for i := range n {
		id := fmt.Sprintf("id%03d", i)
		items = append(items, &youtube.PlaylistItem{
			ID:     id,
			Title:  fmt.Sprintf("Track %d!", i),
			Author: "Test Artist",
			URL:    "https://www.youtube.com/watch?v=" + id,
		})
	}

	return &youtube.Playlist{
		ID:     "PLtest",
		Title:  "Test Playlist",
		Author: "Test Channel",
		Items:  items,
	}
}

// mockTagProcessor records tag requests, optionally failing every call.
type mockTagProcessor struct {
	mu       sync.Mutex
	requests []*WriteTagsRequest
	err      error
}

// WriteTags implements TagProcessor.
func (m *mockTagProcessor) WriteTags(_ context.Context, req *WriteTagsRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	return m.err
}

// recorded returns a snapshot of all recorded requests.
func (m *mockTagProcessor) recorded() []*WriteTagsRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*WriteTagsRequest(nil), m.requests...)
}
