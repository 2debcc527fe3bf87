package grab

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
	"github.com/okhotnikov/albumgrab/internal/logger"
)

// convertItems fans the converter out over all playlist items through a
// bounded worker pool and waits until every conversion settles.
// Results are returned in playlist order regardless of completion order.
func (s *ServiceImpl) convertItems(
	ctx context.Context,
	batchID string,
	playlist *youtube.Playlist,
) []*ItemResult {
	results := make([]*ItemResult, len(playlist.Items))

	// Semaphore channel limits how many conversions run at once.
	semaphore := make(chan struct{}, s.cfg.MaxConcurrentConversions)

	var waitGroup sync.WaitGroup

	for index, item := range playlist.Items {
		waitGroup.Add(1)

		go func(index int, item *youtube.PlaylistItem) {
			defer waitGroup.Done()

			// Acquire semaphore slot (blocks while all workers are busy).
			semaphore <- struct{}{}

			defer func() {
				<-semaphore
			}()

			results[index] = s.convertItem(ctx, batchID, playlist, item)
		}(index, item)
	}

	waitGroup.Wait()

	return results
}

// convertItem converts one playlist item and reports its outcome.
// Cancellation of the request context and the per-item timeout both abort the conversion.
func (s *ServiceImpl) convertItem(
	ctx context.Context,
	batchID string,
	playlist *youtube.Playlist,
	item *youtube.PlaylistItem,
) *ItemResult {
	result := &ItemResult{
		ItemID: item.ID,
		Title:  item.Title,
	}

	startTime := time.Now()

	defer func() {
		result.Elapsed = time.Since(startTime)
	}()

	// A request abandoned by the client stops queued items before they start.
	if err := ctx.Err(); err != nil {
		result.Err = err

		return result
	}

	destinationPath := itemPath(s.cfg.OutputPath, item)

	itemCtx, cancel := context.WithTimeout(ctx, s.cfg.ParsedConversionTimeout)
	defer cancel()

	logger.Infof(ctx, "[%s] Converting item: %v", batchID, item)

	if err := s.converter.ConvertToAudio(itemCtx, item.URL, destinationPath); err != nil {
		logger.Errorf(ctx, "[%s] Failed to convert item %v: %v", batchID, item, err)
		result.Err = err

		return result
	}

	result.Path = destinationPath

	if stat, err := os.Stat(destinationPath); err == nil {
		result.Bytes = stat.Size()
	}

	s.writeTags(ctx, batchID, playlist, item, destinationPath)

	logger.Infof(ctx, "[%s] Converted item: %v -> %s", batchID, item, destinationPath)

	return result
}

// writeTags tags a converted file when tagging is enabled.
// Tagging failures are logged but never fail the item, the audio itself is intact.
func (s *ServiceImpl) writeTags(
	ctx context.Context,
	batchID string,
	playlist *youtube.Playlist,
	item *youtube.PlaylistItem,
	destinationPath string,
) {
	if !s.cfg.WriteTags {
		return
	}

	err := s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		TrackPath:     destinationPath,
		Item:          item,
		PlaylistTitle: playlist.Title,
	})
	if err != nil {
		logger.Warnf(ctx, "[%s] Failed to write tags for item %v: %v", batchID, item, err)
	}
}
