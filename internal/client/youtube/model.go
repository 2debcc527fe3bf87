package youtube

import (
	"fmt"
	"time"
)

// Playlist represents a resolved playlist with its ordered items.
type Playlist struct {
	// ID is the unique playlist identifier.
	ID string
	// Title is the playlist title.
	Title string
	// Author is the playlist owner's name.
	Author string
	// Items contains the playlist entries in playlist order.
	Items []*PlaylistItem
}

// PlaylistItem is the metadata record for one playlist entry.
type PlaylistItem struct {
	// ID is the unique item identifier within the platform.
	ID string
	// Title is the item title.
	Title string
	// Author is the item uploader's name.
	Author string
	// URL is the source locator used for downloading.
	URL string
	// Duration is the item's media duration.
	Duration time.Duration
}

// String returns a human-readable representation of the playlist item.
func (i *PlaylistItem) String() string {
	return fmt.Sprintf("%s (%s)", i.Title, i.ID)
}
