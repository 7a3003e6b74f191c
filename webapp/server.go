// Package webapp serves the quiz over HTTP: the rendered host page, the
// dataset file and a small JSON API.
package webapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"edna-quiz/page"
	"edna-quiz/quiz"
)

// Options configures the HTTP server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// RateLimit is the API request rate per second; zero disables limiting.
	RateLimit float64
	Burst     int
	// Lang is the locale used when a request names none. Empty means
	// detect it from the host page and the request path.
	Lang quiz.Locale
	// Level is the display level used when a request names none.
	Level quiz.Level
}

// Server renders the quiz for every request. It keeps no per-user state:
// the selections travel with the submitted form.
type Server struct {
	catalog *quiz.Catalog
	loadErr error
	host    *page.Host
	opts    Options
	limiter *rate.Limiter
}

// New builds a server. loadErr is the dataset load failure, if any; the
// page then shows the localized failure message instead of the quiz.
func New(catalog *quiz.Catalog, loadErr error, host *page.Host, opts Options) *Server {
	if host == nil {
		host = page.Default()
	}
	s := &Server{
		catalog: catalog,
		loadErr: loadErr,
		host:    host,
		opts:    opts,
	}
	if catalog == nil && loadErr == nil {
		s.loadErr = errors.New("no dataset")
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return s
}

// Routes returns the server's handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(withLogging)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/"+quiz.DefaultSource, s.handleData)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limit)
		r.Get("/state", s.handleState)
		r.Get("/water/{key}", s.handleWater)
		r.Post("/check", s.handleCheck)
	})

	r.Get("/*", s.handlePage)
	r.Post("/*", s.handlePage)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("web quiz available", "url", fmt.Sprintf("http://%s", s.opts.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	slog.Info("shutting down web server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if s.loadErr != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{"status": status})
}

// handleData serves the raw dataset file, never cached.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if s.loadErr != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.catalog.Data.Raw)
}
