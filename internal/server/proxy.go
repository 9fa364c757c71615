package server

import (
	"encoding/json"
	"net/http"
)

// proxyList forwards a GET to the given upstream path and returns the
// result as a JSON array. Non-array upstream responses degrade to an empty
// list. keep, when non-nil, filters individual records.
func (s *Server) proxyList(w http.ResponseWriter, r *http.Request, path string, keep func(json.RawMessage) bool) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	_, raw, err := s.upstream.Do(r.Context(), http.MethodGet, path, sess.Token, nil)
	if err != nil {
		s.logger.Error("upstream list failed", "path", path, "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		items = nil
	}

	filtered := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			filtered = append(filtered, item)
		}
	}

	respondJSON(w, http.StatusOK, filtered)
}

// proxyManage forwards the inbound JSON body to the given upstream path
// using the inbound method, and relays the upstream status and body
// verbatim.
func (s *Server) proxyManage(w http.ResponseWriter, r *http.Request, path string) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, raw, err := s.upstream.Do(r.Context(), r.Method, path, sess.Token, r.Body)
	if err != nil {
		s.logger.Error("upstream manage failed", "method", r.Method, "path", path, "error", err,
			"request_id", RequestIDFromContext(r.Context()))
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	relay(w, status, raw)
}
