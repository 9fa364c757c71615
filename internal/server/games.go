package server

import "net/http"

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.proxyList(w, r, "games/list.php", nil)
}

func (s *Server) handleManageGames(w http.ResponseWriter, r *http.Request) {
	s.proxyManage(w, r, "games/manage.php")
}
