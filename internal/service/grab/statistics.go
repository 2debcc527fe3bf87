package grab

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okhotnikov/albumgrab/internal/logger"
	"github.com/okhotnikov/albumgrab/internal/utils"
)

// ServerStatistics tracks cumulative conversion counters across all requests.
type ServerStatistics struct {
	// BatchesProcessed is the number of playlist batches handled.
	BatchesProcessed int64
	// ItemsConverted is the number of items converted successfully.
	ItemsConverted int64
	// ItemsFailed is the number of items that failed to convert.
	ItemsFailed int64
	// TotalBytesWritten is the combined size of all converted files.
	TotalBytesWritten int64
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// recordBatch folds a settled batch into the cumulative server statistics.
func (s *ServiceImpl) recordBatch(batch *BatchResult) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.BatchesProcessed++
	s.stats.ItemsConverted += int64(batch.SucceededCount())
	s.stats.ItemsFailed += int64(batch.FailedCount())
	s.stats.TotalBytesWritten += batch.TotalBytes()
}

// Statistics returns a snapshot of the cumulative server statistics.
func (s *ServiceImpl) Statistics() ServerStatistics {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	return *s.stats
}

// logBatchSummary logs the outcome of one settled batch.
func (s *ServiceImpl) logBatchSummary(ctx context.Context, batch *BatchResult) {
	if batch.AllSucceeded() {
		logger.Infof(ctx, "[%s] Batch completed: %d items, %s written in %s",
			batch.BatchID,
			len(batch.Items),
			humanize.Bytes(uint64(batch.TotalBytes())), //nolint:gosec // Total bytes is never negative.
			formatDuration(batch.Elapsed()))

		return
	}

	failedTitles := utils.Map(s.failedItems(batch), func(r *ItemResult) string { return r.Title })

	logger.Errorf(ctx, "[%s] Batch completed with failures: %d / %d items failed (%v), %s written in %s",
		batch.BatchID,
		batch.FailedCount(),
		len(batch.Items),
		failedTitles,
		humanize.Bytes(uint64(batch.TotalBytes())), //nolint:gosec // Total bytes is never negative.
		formatDuration(batch.Elapsed()))
}

// failedItems returns the failed results of a batch in playlist order.
func (s *ServiceImpl) failedItems(batch *BatchResult) []*ItemResult {
	failed := make([]*ItemResult, 0, len(batch.Items))

	for _, item := range batch.Items {
		if !item.Succeeded() {
			failed = append(failed, item)
		}
	}

	return failed
}
