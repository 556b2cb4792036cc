package app

import (
	"context"

	"github.com/rs/zerolog"

	"ecotracker/internal/carbon"
	"ecotracker/internal/domain"
)

// CarbonService exposes the carbon footprint model over a session's log.
type CarbonService struct {
	repo domain.WasteRepository
}

// NewCarbonService creates a CarbonService backed by the given repository.
func NewCarbonService(repo domain.WasteRepository) *CarbonService {
	return &CarbonService{repo: repo}
}

// CarbonReport is the footprint together with the tips derived from it.
type CarbonReport struct {
	carbon.Footprint
	Recommendations []string `json:"recommendations"`
}

// Footprint returns the session's footprint. Any calculation failure is
// logged and reported as the empty footprint.
func (s *CarbonService) Footprint(ctx context.Context, sess *domain.Session) carbon.Footprint {
	fp, err := carbon.Calculate(loadEntries(ctx, s.repo, sess))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("user", sess.UserID).Msg("carbon footprint degraded to empty")
		return carbon.Empty()
	}
	return fp
}

// Report returns the footprint and its recommendations.
func (s *CarbonService) Report(ctx context.Context, sess *domain.Session) CarbonReport {
	fp := s.Footprint(ctx, sess)
	return CarbonReport{Footprint: fp, Recommendations: carbon.Recommendations(fp)}
}
