package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler exposing the global registry in the
// Prometheus text format. InitRegistry must have been called first.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Server exposes the registry over HTTP for scraping.
type Server struct {
	httpServer *http.Server
	addr       string
	path       string
}

// NewServer creates a metrics server bound to host:port, serving the
// registry at path.
func NewServer(host string, port int, path string) *Server {
	addr := fmt.Sprintf("%s:%d", host, port)
	mux := http.NewServeMux()
	mux.Handle(path, Handler())

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
		addr:       addr,
		path:       path,
	}
}

// Start begins serving in the background. The listen error is dropped:
// a scrape endpoint that fails to bind must not fail the planning pass.
func (s *Server) Start() {
	go func() {
		_ = s.httpServer.ListenAndServe()
	}()
}

// Shutdown stops the server, waiting up to the context deadline for
// in-flight scrapes.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// URL returns the scrape endpoint address.
func (s *Server) URL() string {
	return "http://" + s.addr + s.path
}
