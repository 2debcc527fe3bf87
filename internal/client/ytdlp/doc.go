// Package ytdlp wraps the yt-dlp executable, which downloads a media item
// and transcodes it to an audio file on disk through ffmpeg.
package ytdlp
