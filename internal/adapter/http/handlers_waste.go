package adapthttp

import (
	"net/http"

	"ecotracker/internal/domain"
)

const (
	defaultRecent = 20
	maxRecent     = 500
)

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": domain.Categories()})
}

func (s *Server) handleWasteEntry(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var body struct {
		Category string  `json:"category"`
		WeightKg float64 `json:"weightKg"`
		Recycled bool    `json:"recycled"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.waste.AddEntry(r.Context(), sessionFromContext(r), body.Category, body.WeightKg, body.Recycled)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleWasteRecent(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	limit := intQuery(r, "limit", defaultRecent, maxRecent)
	items, err := s.waste.ListRecent(r.Context(), sessionFromContext(r), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWasteWeekly(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.waste.Weekly(r.Context(), sessionFromContext(r)))
}
