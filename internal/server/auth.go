package server

import (
	"encoding/json"
	"net/http"
)

// handleLogin proxies credentials to the upstream and mints the session
// cookie pair when, and only when, the returned identity is the configured
// administrator. Upstream login messages are relayed to the client; they
// are user-facing diagnostics, not backend internals.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	status, result, err := s.upstream.Login(r.Context(), r.Body)
	if err != nil {
		s.logger.Error("login upstream failed", "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if status < 200 || status >= 300 || result.Message != "Successful login." {
		msg := result.Message
		if msg == "" {
			msg = "Invalid credentials"
		}
		respondError(w, http.StatusUnauthorized, msg)
		return
	}

	var player struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(result.Player, &player); err != nil || player.ID != s.config.AdminID {
		s.logger.Warn("non-admin login rejected", "id", player.ID,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusForbidden, "Access denied. Only administrators can sign in.")
		return
	}

	s.codec.Encode(w, result.Token, result.Player)
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    result.Player,
	})
}

// handleLogout clears both session cookies and reports success. Idempotent:
// a caller with no session, or an already-expired one, gets the same answer.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.codec.Clear(w)
	respondJSON(w, http.StatusOK, map[string]any{"message": "Logged out"})
}
