// Package ui renders the dashboard shells. All record data is loaded by the
// browser from the /api surface; these pages only provide the frame, so the
// presentation stays decoupled from the proxy contract.
package ui

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// UI serves the login page and the dashboard shells.
type UI struct {
	logger    *slog.Logger
	templates *template.Template
}

// New creates a UI handler with all templates parsed.
// Panics on a malformed embedded template; that is a build defect.
func New(logger *slog.Logger) *UI {
	return &UI{
		logger:    logger.With("component", "ui"),
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// StaticHandler serves the embedded CSS and JS under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// pageData is what every template receives.
type pageData struct {
	Title   string
	Section string
}

// render executes a template into a buffer first so a failure can still
// produce a clean 500 instead of a half-written page.
func (ui *UI) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := ui.templates.ExecuteTemplate(&buf, name, data); err != nil {
		ui.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// HandleLoginPage renders the login form. The gate already redirects
// authenticated admins to the dashboard before this runs.
func (ui *UI) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	ui.render(w, "login.html", pageData{Title: "Sign in"})
}

// HandleDashboard renders a dashboard shell for the given section.
func (ui *UI) HandleDashboard(section, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ui.render(w, "dashboard.html", pageData{Title: title, Section: section})
	}
}
