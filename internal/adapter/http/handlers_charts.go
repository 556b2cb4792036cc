package adapthttp

import (
	"net/http"

	"ecotracker/internal/app"
)

func (s *Server) handleChartsComposition(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": s.charts.Composition(r.Context(), sessionFromContext(r)),
	})
}

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	days := intQuery(r, "days", 7, app.MaxChartDays)
	points := s.charts.Daily(r.Context(), sessionFromContext(r), days)

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"today": s.charts.Today(),
		"items": points,
	})
}
