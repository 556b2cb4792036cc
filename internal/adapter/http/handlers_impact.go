package adapthttp

import "net/http"

func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.waste.Impact(r.Context(), sessionFromContext(r)))
}

func (s *Server) handleCarbon(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.carbon.Report(r.Context(), sessionFromContext(r)))
}
