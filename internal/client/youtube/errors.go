package youtube

import "errors"

var (
	// ErrEmptyPlaylistURL indicates that the playlist URL is missing.
	ErrEmptyPlaylistURL = errors.New("playlist URL cannot be empty")
	// ErrPlaylistResolution indicates that the playlist could not be resolved
	// into a list of items (bad URL, network failure, or access denial).
	ErrPlaylistResolution = errors.New("failed to resolve playlist")
)
