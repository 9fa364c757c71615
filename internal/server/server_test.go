package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/me/scoredeck/internal/config"
)

// newTestServer builds a Server pointed at a stub upstream.
func newTestServer(t *testing.T, upstream http.Handler) *Server {
	t.Helper()
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)
	return newServerAt(t, ts.URL)
}

// newServerAt builds a Server against an arbitrary upstream base URL.
func newServerAt(t *testing.T, upstreamURL string) *Server {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.UpstreamURL = upstreamURL
	cfg.AdminID = "admin-1"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, logger)
}

// addAdminCookies attaches a valid admin session to the request, encoded
// the way the codec writes it.
func addAdminCookies(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: "token", Value: url.QueryEscape("tok-1")})
	r.AddCookie(&http.Cookie{Name: "user", Value: url.QueryEscape(`{"id":"admin-1"}`)})
}

func do(srv *Server, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}
