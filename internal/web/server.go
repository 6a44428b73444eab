package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/panelboard/internal/panels"
	"github.com/louisbranch/panelboard/internal/panels/sqlite"
	"github.com/louisbranch/panelboard/internal/web/templates"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config holds the web server configuration.
type Config struct {
	// HTTPAddr is the listen address, for example "localhost:8080".
	HTTPAddr string
	// StoragePath is the SQLite database path for the panel catalog.
	StoragePath string
}

// Server wraps the HTTP server and the panel store it owns.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
}

// NewHandler builds the route tree over a panel source.
func NewHandler(source panels.Source, loc templates.Localizer) http.Handler {
	h := newHandlers(source, loc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleDashboard)
	mux.HandleFunc("GET /panels/{id}", h.handlePanel)
	mux.HandleFunc("GET /up", handleUp)
	return mux
}

// NewServer builds a configured web server backed by the SQLite panel store.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	store, err := sqlite.Open(config.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open panel store: %w", err)
	}

	loc := message.NewPrinter(language.English)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(store, loc),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("panelboard web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the panel store held by the server.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close panel store: %v", err)
	}
}
