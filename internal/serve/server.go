// Package serve runs the breakpoint preview server: a small HTTP
// server that renders the configured table as a live page, regenerates
// on config changes, and reloads connected browsers over SSE.
package serve

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/viewportlabs/breakline/internal/generate"
	"github.com/viewportlabs/breakline/pkg/breakpoint"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// debounceDelay coalesces editor write bursts into one rebuild.
const debounceDelay = 100 * time.Millisecond

// TableLoader re-reads the breakpoint table and converter, typically
// by reloading the config file.
type TableLoader func() (*breakpoint.Table, mediaquery.Converter, error)

// Server is the live preview server.
type Server struct {
	port      int
	watchFile string
	load      TableLoader
	logger    *slog.Logger

	mu        sync.RWMutex
	html      []byte
	css       []byte
	clients   map[chan struct{}]struct{}
	clientsMu sync.Mutex
}

// New creates a preview server. watchFile may be empty when the
// project runs on the default table; the watcher is skipped then.
func New(port int, watchFile string, load TableLoader, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		port:      port,
		watchFile: watchFile,
		load:      load,
		logger:    logger,
		clients:   make(map[chan struct{}]struct{}),
	}
}

// Run builds once, then serves until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.rebuild(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/breakpoints.css", s.handleCSS)
	r.Get("/__reload", s.handleSSE)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	if s.watchFile != "" {
		g.Go(func() error { return s.watch(ctx) })
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		s.logger.Info("preview server running", "addr", fmt.Sprintf("http://localhost:%d", s.port))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	return g.Wait()
}

// watch rebuilds and notifies clients whenever the config file
// changes. Watching the directory instead of the file survives the
// rename-and-replace saves most editors do.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.watchFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.watchFile, err)
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(s.watchFile) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				s.logger.Info("config changed, rebuilding", "file", filepath.Base(event.Name))
				if err := s.rebuild(); err != nil {
					s.logger.Error("rebuild failed", "error", err)
					return
				}
				s.notifyClients()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// rebuild regenerates the preview page and stylesheet from the current
// config.
func (s *Server) rebuild() error {
	table, conv, err := s.load()
	if err != nil {
		return err
	}

	entries, err := generate.Entries(table)
	if err != nil {
		return err
	}

	css, err := generate.Render(table, generate.FormatCustomMedia, conv)
	if err != nil {
		return err
	}

	html, err := renderPreview(entries, conv)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.html = html
	s.css = []byte(css)
	s.mu.Unlock()
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.html)
}

func (s *Server) handleCSS(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(s.css)
}

// handleSSE holds the connection open and pings the client whenever a
// rebuild lands.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan struct{}, 1)
	s.clientsMu.Lock()
	s.clients[ch] = struct{}{}
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, ch)
		s.clientsMu.Unlock()
	}()

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			_, _ = fmt.Fprintf(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}

func (s *Server) notifyClients() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
