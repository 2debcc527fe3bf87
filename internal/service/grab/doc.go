// Package grab implements the playlist ingestion workflow: it resolves a
// playlist URL into items, converts every item to an MP3 file in the output
// directory through a bounded worker pool, and aggregates per-item outcomes
// into a single batch result.
package grab
