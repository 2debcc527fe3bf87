package ytdlp

import "errors"

var (
	// ErrConversion indicates that downloading or transcoding an item failed.
	ErrConversion = errors.New("conversion failed")
	// ErrNoOutputFile indicates that the tool reported success but left no file at the destination.
	ErrNoOutputFile = errors.New("conversion produced no output file")
	// ErrYtdlpNotFound indicates that the yt-dlp executable is missing or not runnable.
	ErrYtdlpNotFound = errors.New("yt-dlp executable not found")
	// ErrFFmpegNotFound indicates that the ffmpeg executable is missing.
	ErrFFmpegNotFound = errors.New("ffmpeg executable not found")
)
