package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okhotnikov/albumgrab/internal/logger"
	"github.com/okhotnikov/albumgrab/internal/service/grab"
)

const (
	missingURLMessage    = "Error: No URL provided"
	successMessage       = "All videos downloaded and converted successfully!"
	downloadErrorPrefix  = "Error downloading playlist: "
	unknownErrorFallback = "Unknown error"

	itemStatusConverted = "converted"
	itemStatusFailed    = "failed"
)

// downloadAlbumResponse is the body of both success and failure responses
// of the download endpoint.
type downloadAlbumResponse struct {
	Message       string              `json:"message,omitempty"`
	Error         string              `json:"error,omitempty"`
	PlaylistURL   string              `json:"playlist_url,omitempty"`
	PlaylistTitle string              `json:"playlist_title,omitempty"`
	Total         int                 `json:"total"`
	Succeeded     int                 `json:"succeeded"`
	Failed        int                 `json:"failed"`
	Items         []downloadAlbumItem `json:"items,omitempty"`
}

// downloadAlbumItem is the per-item slice of a downloadAlbumResponse.
type downloadAlbumItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Error  string `json:"error,omitempty"`
}

// healthResponse is the body of the health probe.
type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleDownloadAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlistURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if playlistURL == "" {
		writeJSON(w, http.StatusBadRequest, &downloadAlbumResponse{
			Error: missingURLMessage,
		})

		return
	}

	logger.InfoKV(ctx, "accepted download request",
		"playlist_url", playlistURL,
		"remote_addr", r.RemoteAddr)

	batch, err := s.service.DownloadPlaylist(ctx, playlistURL)
	if err != nil {
		logger.ErrorKV(ctx, "playlist download failed",
			"playlist_url", playlistURL,
			"error", err)

		writeJSON(w, http.StatusInternalServerError, &downloadAlbumResponse{
			Error:       downloadErrorPrefix + errorMessage(err),
			PlaylistURL: playlistURL,
		})

		return
	}

	response := &downloadAlbumResponse{
		PlaylistURL:   batch.PlaylistURL,
		PlaylistTitle: batch.PlaylistTitle,
		Total:         len(batch.Items),
		Succeeded:     batch.SucceededCount(),
		Failed:        batch.FailedCount(),
		Items:         convertItems(batch.Items),
	}

	if batch.AllSucceeded() {
		response.Message = successMessage

		writeJSON(w, http.StatusOK, response)

		return
	}

	response.Error = downloadErrorPrefix + errorMessage(batch.FirstError())

	writeJSON(w, http.StatusInternalServerError, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &healthResponse{Status: "ok"})
}

func convertItems(items []*grab.ItemResult) []downloadAlbumItem {
	result := make([]downloadAlbumItem, 0, len(items))

	for _, item := range items {
		converted := downloadAlbumItem{
			ID:    item.ItemID,
			Title: item.Title,
		}

		if item.Succeeded() {
			converted.Status = itemStatusConverted
			converted.Path = item.Path
		} else {
			converted.Status = itemStatusFailed
			converted.Error = item.Err.Error()
		}

		result = append(result, converted)
	}

	return result
}

// errorMessage extracts a human-readable message from an error,
// falling back to a fixed text when the message is empty.
func errorMessage(err error) string {
	if err == nil {
		return unknownErrorFallback
	}

	message := strings.TrimSpace(err.Error())
	if message == "" {
		return unknownErrorFallback
	}

	return message
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.ErrorKV(context.Background(), "failed to encode response", "error", err)
	}
}
