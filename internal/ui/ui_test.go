package ui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func testUI() *UI {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleLoginPage(t *testing.T) {
	ui := testUI()

	w := httptest.NewRecorder()
	ui.HandleLoginPage(w, httptest.NewRequest("GET", "/login", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="login-form"`) {
		t.Error("login form missing from page")
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHandleDashboard_Sections(t *testing.T) {
	ui := testUI()

	sections := map[string]string{
		"ba":    "Business Associates",
		"games": "Games",
		"teams": "Teams",
	}
	for section, title := range sections {
		w := httptest.NewRecorder()
		ui.HandleDashboard(section, title)(w, httptest.NewRequest("GET", "/dashboard/"+section, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", section, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `data-section="`+section+`"`) {
			t.Errorf("%s: shell missing section marker", section)
		}
		if !strings.Contains(body, title) {
			t.Errorf("%s: shell missing title %q", section, title)
		}
	}
}

func TestRegisterRoutes_RootRedirects(t *testing.T) {
	r := chi.NewRouter()
	testUI().RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestStaticHandler(t *testing.T) {
	h := StaticHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/static/style.css", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "sidebar") {
		t.Error("stylesheet content missing")
	}
}
