package grab

import (
	"path/filepath"
	"regexp"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
	"github.com/okhotnikov/albumgrab/internal/constants"
	"github.com/okhotnikov/albumgrab/internal/utils"
)

// titleSeparator replaces every character a filesystem might object to.
const titleSeparator = "_"

// nonAlphanumericPattern matches every character outside the alphanumeric set.
//
//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern used as a constant.
var nonAlphanumericPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeTitle maps every non-alphanumeric character of a title to the
// separator, uniformly and deterministically, producing a filesystem-safe name.
func sanitizeTitle(title string) string {
	return nonAlphanumericPattern.ReplaceAllString(title, titleSeparator)
}

// itemFilename derives the deterministic output filename for a playlist item.
// The item ID suffix keeps paths unique even when two titles sanitize identically.
func itemFilename(item *youtube.PlaylistItem) string {
	name := sanitizeTitle(item.Title) + titleSeparator + item.ID

	return utils.SetFileExtension(name, constants.ExtensionMP3, false)
}

// itemPath derives the full output path for a playlist item.
func itemPath(outputPath string, item *youtube.PlaylistItem) string {
	return filepath.Join(outputPath, itemFilename(item))
}
