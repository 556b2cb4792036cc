package adapthttp

import (
	"errors"
	"fmt"
	"net/http"

	"ecotracker/internal/domain"
)

func (s *Server) handleCommunity(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	sess := sessionFromContext(r)
	stats := s.community.Stats(r.Context(), sess)
	weekly := s.waste.Weekly(r.Context(), sess)

	writeJSON(w, http.StatusOK, struct {
		domain.CommunityStats
		UserID        string  `json:"userId"`
		RecyclingRate float64 `json:"recyclingRate"`
		RateDelta     float64 `json:"rateDelta"`
	}{
		CommunityStats: stats,
		UserID:         sess.UserID,
		RecyclingRate:  weekly.RecyclingRate,
		RateDelta:      weekly.RecyclingRate - stats.AvgRecyclingRate,
	})
}

// handleCommunityShare appends a snapshot. With an empty body the session's
// current weekly figures are shared; otherwise the body must carry all three
// values as numbers or numeric strings.
func (s *Server) handleCommunityShare(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	sess := sessionFromContext(r)
	if !s.share.allow(sess.ID) {
		w.Header().Set("Retry-After", "10")
		writeError(w, http.StatusTooManyRequests, errors.New("sharing too often, try again shortly"))
		return
	}

	raw, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var total, recycled, rate float64
	if raw == nil {
		weekly := s.waste.Weekly(r.Context(), sess)
		total, recycled, rate = weekly.TotalKg, weekly.RecycledKg, weekly.RecyclingRate
	} else {
		vals, err := parseProgress(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		total, recycled, rate = vals[0], vals[1], vals[2]
	}

	snap, err := s.community.Share(r.Context(), sess, total, recycled, rate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshot": snap})
}

var progressFields = []string{"totalWaste", "recycledWaste", "recyclingRate"}

// parseProgress decodes the share body into totalWaste, recycledWaste and
// recyclingRate, in that order.
func parseProgress(raw []byte) ([3]float64, error) {
	var out [3]float64
	var body map[string]any
	if err := decodeJSON(raw, &body, true); err != nil {
		return out, fmt.Errorf("%w: %w", domain.ErrInvalidProgressData, err)
	}
	for k := range body {
		known := false
		for _, f := range progressFields {
			known = known || k == f
		}
		if !known {
			return out, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidProgressData, k)
		}
	}
	for i, f := range progressFields {
		v, ok := body[f]
		if !ok {
			return out, fmt.Errorf("%w: %s is required", domain.ErrInvalidProgressData, f)
		}
		n, err := domain.CoerceFloat(v)
		if err != nil {
			return out, fmt.Errorf("%s: %w", f, err)
		}
		out[i] = n
	}
	return out, nil
}
