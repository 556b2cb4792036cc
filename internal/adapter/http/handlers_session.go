package adapthttp

import "net/http"

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, sessionFromContext(r))
}

func (s *Server) handleSessionEnd(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	sess := sessionFromContext(r)
	if err := s.sessions.End(r.Context(), sess.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	s.share.forget(sess.ID)

	w.Header().Del("Set-Cookie")
	http.SetCookie(w, newSessionCookie(r, "", -1))
	writeJSON(w, http.StatusOK, map[string]any{"ended": true})
}
