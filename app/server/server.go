// Package server provides HTTP server for the portfolio screen.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/shanavlnc/folio/app/portfolio"
	"github.com/shanavlnc/folio/app/server/api"
	"github.com/shanavlnc/folio/app/server/web"
)

// Server represents the HTTP server.
type Server struct {
	screens    ScreenStore
	cfg        Config
	version    string
	baseURL    string
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// ScreenStore defines the interface for mounted screen storage.
// Defined here (consumer side) to allow different store implementations.
type ScreenStore interface {
	Mount() (*portfolio.Screen, error)
	Get(id string) (*portfolio.Screen, error)
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /folio)
	ProfileImage    string // path to the profile photo served at /assets/profile

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
func New(screens ScreenStore, content portfolio.Content, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{
		screens:  screens,
		cfg:      cfg,
		version:  cfg.Version,
		baseURL:  cfg.BaseURL,
		staticFS: staticContent,
	}

	webHandler, err := web.New(screens, web.Config{BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler
	s.apiHandler = api.New(screens, content)

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("folio", "shanavlnc", s.version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	router.HandleFunc("GET /assets/profile", s.handleProfileImage)

	s.webHandler.Register(router)

	router.Mount("/api/v1").Route(func(apiRouter *routegroup.Bundle) {
		s.apiHandler.Register(apiRouter)
	})

	return router
}

// handleProfileImage serves the bundled profile photo. There is no fallback image,
// a missing file is a packaging problem and results in 404.
func (s *Server) handleProfileImage(w http.ResponseWriter, r *http.Request) {
	if s.cfg.ProfileImage == "" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, s.cfg.ProfileImage)
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024 // the only posts are theme toggles with an empty body
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// shutdownTimeout returns the configured shutdown timeout, or default 5s if not set.
func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
