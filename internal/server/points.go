package server

import (
	"net/http"
	"net/url"
)

// handleListPoints fetches the points for one game. game_id is required and
// checked before any upstream traffic.
func (s *Server) handleListPoints(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		respondError(w, http.StatusBadRequest, "game_id required")
		return
	}

	s.proxyList(w, r, "games/filter.php?game_id="+url.QueryEscape(gameID), nil)
}

// handleUpdatePoints passes the {id, points} body through unchanged.
func (s *Server) handleUpdatePoints(w http.ResponseWriter, r *http.Request) {
	s.proxyManage(w, r, "points/manage.php")
}
