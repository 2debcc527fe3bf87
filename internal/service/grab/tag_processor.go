package grab

//go:generate $MOCKGEN -source=tag_processor.go -destination=mocks/tag_processor_mock.go

import (
	"context"
	"errors"

	"github.com/oshokin/id3v2/v2"

	"github.com/okhotnikov/albumgrab/internal/client/youtube"
)

// TagProcessor defines the interface for writing metadata tags to converted audio files.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for tagging one converted file.
type WriteTagsRequest struct {
	// TrackPath is the file path of the converted audio file.
	TrackPath string
	// Item is the playlist item the file was converted from.
	Item *youtube.PlaylistItem
	// PlaylistTitle is the resolved playlist title, written as the album tag.
	PlaylistTitle string
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// ErrEmptyTrackPath indicates that the track file path is empty.
var ErrEmptyTrackPath = errors.New("track path cannot be empty")

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// WriteTags writes ID3 metadata to a converted MP3 file.
func (tp *TagProcessorImpl) WriteTags(_ context.Context, req *WriteTagsRequest) error {
	if req.TrackPath == "" {
		return ErrEmptyTrackPath
	}

	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(req.TrackPath, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(req.Item.Title)
	tag.SetArtist(req.Item.Author)
	tag.SetAlbum(req.PlaylistTitle)

	// Keep the source locator in a comment frame so files remain traceable.
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    id3v2.EnglishISO6392Code,
		Description: "Source",
		Text:        req.Item.URL,
	})

	return tag.Save()
}
