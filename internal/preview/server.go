// Package preview serves a project's template files over HTTP with live
// reload, so template edits can be checked in a browser before rendering.
package preview

import (
	"fmt"
	"net/http"

	"github.com/shotforge/shotforge/internal/config"
	"github.com/shotforge/shotforge/internal/project"
)

// Server is the static preview server for one project directory.
type Server struct {
	paths    project.Paths
	loader   *config.Loader
	registry *Registry
}

// NewServer creates a preview server for the project at dir.
func NewServer(dir string) *Server {
	paths := project.NewPaths(dir)
	return &Server{
		paths:    paths,
		loader:   config.NewLoader(paths.ConfigFile),
		registry: NewRegistry(),
	}
}

// Registry exposes the live-reload client registry, mainly for the
// watcher and for tests.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Handler returns the HTTP handler: project files at the root, the render
// config as JSON at /config, and the live-reload event stream at /events.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.paths.Root)))
	mux.HandleFunc("/config", s.handleConfig)
	mux.HandleFunc("/events", s.handleEvents)
	return mux
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.loader.Load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"width":%d,"height":%d,"screens":%d}`+"\n",
		cfg.Width, cfg.Height, len(cfg.Screens))
}

// handleEvents is the SSE endpoint. Each connection subscribes to the
// registry and unsubscribes when the client goes away.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := s.registry.Subscribe()
	defer s.registry.Unsubscribe(ch)

	fmt.Fprint(w, "event: connected\ndata: ok\n\n")
	flusher.Flush()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, event)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

// ListenAndServe starts the watcher and serves until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	stop, err := s.watch()
	if err != nil {
		return err
	}
	defer stop()
	return http.ListenAndServe(addr, s.Handler())
}
