package server

import "net/http"

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	s.proxyList(w, r, "team/list.php", nil)
}

// handleCreateTeam forwards the inbound multipart form unmodified so an
// attached logo file survives the hop. Creation is always multipart, even
// when no file is present; the boundary comes from the inbound request.
func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, raw, err := s.upstream.DoForm(r.Context(), http.MethodPost, "team/manage.php",
		sess.Token, r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		s.logger.Error("upstream team create failed", "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	relay(w, status, raw)
}

// handleManageTeams handles PATCH and DELETE, which carry plain JSON.
func (s *Server) handleManageTeams(w http.ResponseWriter, r *http.Request) {
	s.proxyManage(w, r, "team/manage.php")
}
