package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/okhotnikov/albumgrab/internal/config"
	"github.com/okhotnikov/albumgrab/internal/logger"
	"github.com/okhotnikov/albumgrab/internal/service/grab"
)

const (
	downloadAlbumRoute = "GET /download-album"
	healthRoute        = "GET /healthz"
)

// Server serves the download endpoint over HTTP.
type Server struct {
	cfg           *config.Config
	service       grab.Service
	httpServer    *http.Server
	listenerMutex sync.Mutex
	listener      net.Listener
}

// NewServer creates a server with all routes registered.
// Run must be called to start accepting connections.
func NewServer(cfg *config.Config, service grab.Service) *Server {
	server := &Server{
		cfg:     cfg,
		service: service,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(downloadAlbumRoute, server.handleDownloadAlbum)
	mux.HandleFunc(healthRoute, server.handleHealth)

	server.httpServer = &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: mux,
	}

	return server
}

// Addr returns the address the server is listening on.
// Before Run has bound a listener it returns the configured address.
func (s *Server) Addr() string {
	s.listenerMutex.Lock()
	defer s.listenerMutex.Unlock()

	if s.listener == nil {
		return s.cfg.ListenAddress
	}

	return s.listener.Addr().String()
}

func (s *Server) setListener(listener net.Listener) {
	s.listenerMutex.Lock()
	defer s.listenerMutex.Unlock()

	s.listener = listener
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully,
// giving in-flight requests the configured shutdown timeout to finish.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return err
	}

	s.setListener(listener)

	logger.InfoKV(ctx, "server listening", "address", s.Addr())

	serveErrors := make(chan error, 1)

	go func() {
		serveErrors <- s.httpServer.Serve(listener)
	}()

	select {
	case err = <-serveErrors:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ParsedShutdownTimeout)
	defer cancel()

	if err = s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-serveErrors
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
