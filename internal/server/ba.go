package server

import (
	"encoding/json"
	"net/http"
)

// handleListBA lists business associates. The administrator's own upstream
// record is never presented as a manageable entry.
func (s *Server) handleListBA(w http.ResponseWriter, r *http.Request) {
	s.proxyList(w, r, "players/list.php", func(item json.RawMessage) bool {
		var rec struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(item, &rec); err != nil {
			return true
		}
		return rec.ID != s.config.AdminID
	})
}

// handleManageBA passes create/update/delete bodies through unchanged.
func (s *Server) handleManageBA(w http.ResponseWriter, r *http.Request) {
	s.proxyManage(w, r, "players/manage.php")
}
