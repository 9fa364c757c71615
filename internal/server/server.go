// Package server implements the scoredeck HTTP layer: the authorization
// gate, the resource proxy handlers, and the routing that ties them to the
// server-rendered dashboard shells.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/scoredeck/internal/config"
	"github.com/me/scoredeck/internal/session"
	"github.com/me/scoredeck/internal/ui"
	"github.com/me/scoredeck/internal/upstream"
)

// Server is the scoredeck admin dashboard server. Handlers are stateless:
// the only per-request state is the session decoded from cookies by the
// gate, and the only blocking point is the single upstream call.
type Server struct {
	router   chi.Router
	logger   *slog.Logger
	config   config.ServerConfig
	codec    *session.Codec
	upstream *upstream.Client
	ui       *ui.UI
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger.With("component", "server"),
		config: cfg,
		codec: session.NewCodec(session.Config{
			TokenCookie: cfg.TokenCookie,
			UserCookie:  cfg.UserCookie,
			AdminID:     cfg.AdminID,
			Secure:      cfg.SecureCookies(),
		}),
		upstream: upstream.New(cfg.UpstreamURL, logger),
		ui:       ui.New(logger),
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware. The gate runs last so every route, including ones
	// chi does not know, is classified before a handler (or the 404) runs.
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(s.gate)

	// Static assets (CSS, JS).
	r.Handle("/static/*", ui.StaticHandler())

	// Dashboard pages (HTML).
	s.ui.RegisterRoutes(r)

	// API routes (JSON). Authorization happened in the gate; handlers
	// re-derive the session from context only to obtain the bearer token.
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		r.Get("/ba", s.handleListBA)
		r.Post("/ba", s.handleManageBA)
		r.Patch("/ba", s.handleManageBA)
		r.Delete("/ba", s.handleManageBA)

		r.Get("/games", s.handleListGames)
		r.Post("/games", s.handleManageGames)
		r.Patch("/games", s.handleManageGames)
		r.Delete("/games", s.handleManageGames)

		r.Get("/points", s.handleListPoints)
		r.Patch("/points", s.handleUpdatePoints)

		r.Get("/teams", s.handleListTeams)
		r.Post("/teams", s.handleCreateTeam)
		r.Patch("/teams", s.handleManageTeams)
		r.Delete("/teams", s.handleManageTeams)
	})
}
