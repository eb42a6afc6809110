// Package server serves a live preview of a scene file over HTTP.
//
// The scene is reloaded on every request, so editing the file and refreshing
// the browser shows the change immediately.
//
//	GET /overlay.svg          the rendered overlay
//	GET /overlay.png?scale=s  a raster preview (shapes and images only)
//	GET /healthz              status of the last render
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/raster"
	"github.com/matzehuels/svglayer/pkg/scene"
	"github.com/matzehuels/svglayer/pkg/svglayer"
)

const shutdownTimeout = 5 * time.Second

// Server renders one scene file on demand.
type Server struct {
	scenePath string
	layerOpts []svglayer.Option
	logger    *log.Logger
	router    chi.Router

	mu         sync.RWMutex
	renders    int
	lastErr    error
	lastRender time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLayerOptions passes options to every layer built from the scene.
func WithLayerOptions(opts ...svglayer.Option) Option {
	return func(s *Server) { s.layerOpts = append(s.layerOpts, opts...) }
}

// New creates a server for the scene at scenePath.
func New(scenePath string, opts ...Option) *Server {
	s := &Server{
		scenePath: scenePath,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/overlay.svg", s.handleSVG)
	r.Get("/overlay.png", s.handlePNG)
	r.Get("/healthz", s.handleHealth)
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// render loads the scene and serializes it.
func (s *Server) render() ([]byte, error) {
	svg, err := s.build()

	s.mu.Lock()
	s.renders++
	s.lastErr = err
	s.lastRender = time.Now()
	s.mu.Unlock()

	return svg, err
}

func (s *Server) build() ([]byte, error) {
	sc, err := scene.Load(s.scenePath)
	if err != nil {
		return nil, err
	}
	layer, err := sc.Build(s.layerOpts...)
	if err != nil {
		return nil, err
	}
	return []byte(layer.SVG()), nil
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := s.render()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(svg)
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	scale := 1.0
	if v := r.URL.Query().Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 4 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, 4], got %q", v))
			return
		}
		scale = f
	}

	svg, err := s.render()
	if err != nil {
		s.writeError(w, err)
		return
	}
	png, err := raster.ToPNG(r.Context(), svg, scale)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	renders, lastErr, lastRender := s.renders, s.lastErr, s.lastRender
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if lastErr != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "last render failed: %s\n", errors.UserMessage(lastErr))
		return
	}
	if renders == 0 {
		fmt.Fprintln(w, "ok (no renders yet)")
		return
	}
	fmt.Fprintf(w, "ok (%d renders, last at %s)\n", renders, lastRender.Format(time.RFC3339))
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeFileNotFound, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	}
	if errors.GetCode(err).Validation() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	s.logger.Warn("render failed", "status", status, "err", err)
	http.Error(w, err.Error(), status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Microsecond),
		)
	})
}
