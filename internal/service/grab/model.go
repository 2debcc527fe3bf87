package grab

import (
	"time"
)

// ItemResult holds the outcome of converting a single playlist item.
type ItemResult struct {
	// ItemID is the unique identifier of the item.
	ItemID string
	// Title is the item's original title.
	Title string
	// Path is the location of the converted file. Empty when the conversion failed.
	Path string
	// Bytes is the size of the converted file.
	Bytes int64
	// Elapsed is how long the conversion took.
	Elapsed time.Duration
	// Err is the conversion failure, nil on success.
	Err error
}

// Succeeded reports whether the item converted successfully.
func (r *ItemResult) Succeeded() bool {
	return r.Err == nil
}

// BatchResult aggregates the outcomes of one playlist download request.
type BatchResult struct {
	// BatchID correlates all log lines produced by one request.
	BatchID string
	// PlaylistURL is the caller-supplied playlist locator.
	PlaylistURL string
	// PlaylistTitle is the resolved playlist title.
	PlaylistTitle string
	// Items contains per-item outcomes in playlist order.
	Items []*ItemResult
	// StartTime is when the batch started.
	StartTime time.Time
	// EndTime is when the last conversion settled.
	EndTime time.Time
}

// SucceededCount returns the number of successfully converted items.
func (b *BatchResult) SucceededCount() int {
	count := 0

	for _, item := range b.Items {
		if item.Succeeded() {
			count++
		}
	}

	return count
}

// FailedCount returns the number of failed items.
func (b *BatchResult) FailedCount() int {
	return len(b.Items) - b.SucceededCount()
}

// AllSucceeded reports whether every item in the batch converted successfully.
// An empty batch counts as a success.
func (b *BatchResult) AllSucceeded() bool {
	return b.FailedCount() == 0
}

// TotalBytes returns the combined size of all converted files in the batch.
func (b *BatchResult) TotalBytes() int64 {
	var total int64

	for _, item := range b.Items {
		total += item.Bytes
	}

	return total
}

// Elapsed returns the wall-clock duration of the batch.
func (b *BatchResult) Elapsed() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// FirstError returns the first failed item's error in playlist order, or nil.
func (b *BatchResult) FirstError() error {
	for _, item := range b.Items {
		if item.Err != nil {
			return item.Err
		}
	}

	return nil
}
