package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/me/scoredeck/internal/session"
)

const ctxKeySession ctxKey = "session"

// SessionFromContext retrieves the session the gate attached to the request.
// Returns nil for requests that passed through on a public path.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ctxKeySession).(*session.Session)
	return sess
}

// isPublicPath reports whether a path is reachable without a session: the
// login page and the auth endpoints (logout stays public so it is idempotent
// for clients whose cookies have already expired), plus static assets.
func isPublicPath(path string) bool {
	return path == "/login" ||
		strings.HasPrefix(path, "/api/auth/") ||
		strings.HasPrefix(path, "/static/")
}

// gate is the single authorization boundary. It classifies every inbound
// request before any handler runs: public paths pass through, protected
// paths require a valid admin session. Decoding happens exactly once per
// request; handlers read the result from context.
func (s *Server) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		sess := s.codec.Decode(r)

		if isPublicPath(path) {
			// An authenticated admin asking for the login page goes
			// straight to the dashboard.
			if sess != nil && path == "/login" {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if sess == nil {
			// Fail closed: API callers get a structured 401, page
			// requests are sent to the login form.
			if strings.HasPrefix(path, "/api/") {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeySession, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
