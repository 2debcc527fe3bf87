package grab

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
)

// TestSanitizeTitle tests that every non-alphanumeric character maps to the separator.
func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "plain alphanumeric title",
			title:    "Song2",
			expected: "Song2",
		},
		{
			name:     "punctuation and spaces",
			title:    "Song: Part 2!",
			expected: "Song__Part_2_",
		},
		{
			name:     "non-latin characters",
			title:    "Песня №1",
			expected: "_______1",
		},
		{
			name:     "empty title",
			title:    "",
			expected: "",
		},
		{
			name:     "path separators",
			title:    "a/b\\c",
			expected: "a_b_c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizeTitle(tt.title))
		})
	}
}

// TestSanitizeTitle_Deterministic tests that sanitization is stable across calls.
func TestSanitizeTitle_Deterministic(t *testing.T) {
	t.Parallel()

	title := "Song: Part 2!"
	assert.Equal(t, sanitizeTitle(title), sanitizeTitle(title))
}

// TestItemPath tests output path derivation.
func TestItemPath(t *testing.T) {
	t.Parallel()

	item := &youtube.PlaylistItem{ID: "abc123", Title: "Song: Part 2!"}

	path := itemPath("downloads", item)
	assert.Equal(t, filepath.Join("downloads", "Song__Part_2__abc123.mp3"), path)
}

// TestItemPath_CollidingTitles tests that IDs disambiguate identical sanitized titles.
func TestItemPath_CollidingTitles(t *testing.T) {
	t.Parallel()

	first := &youtube.PlaylistItem{ID: "aaa", Title: "Song!"}
	second := &youtube.PlaylistItem{ID: "bbb", Title: "Song?"}

	assert.Equal(t, sanitizeTitle(first.Title), sanitizeTitle(second.Title))
	assert.NotEqual(t, itemPath("downloads", first), itemPath("downloads", second))
}
