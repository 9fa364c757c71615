package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the page routes on the given router. The
// authorization gate has already classified the request; nothing here
// checks cookies again.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Get("/login", ui.HandleLoginPage)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	r.Get("/dashboard", ui.HandleDashboard("overview", "Dashboard"))
	r.Get("/dashboard/ba", ui.HandleDashboard("ba", "Business Associates"))
	r.Get("/dashboard/games", ui.HandleDashboard("games", "Games"))
	r.Get("/dashboard/teams", ui.HandleDashboard("teams", "Teams"))
}
