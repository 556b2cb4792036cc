// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"ecotracker/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	waste     *app.WasteService
	carbon    *app.CarbonService
	charts    *app.ChartsService
	community *app.CommunityService
	sessions  *app.SessionService
	webDir    string

	log   zerolog.Logger
	share *sessionLimiter
}

// Services groups the application services the server drives.
type Services struct {
	Waste     *app.WasteService
	Carbon    *app.CarbonService
	Charts    *app.ChartsService
	Community *app.CommunityService
	Sessions  *app.SessionService
}

// New creates a Server wired to the given application services. Sharing
// progress defaults to one share per 10 seconds per session, burst 3.
func New(svc Services, webDir string) *Server {
	return &Server{
		waste:     svc.Waste,
		carbon:    svc.Carbon,
		charts:    svc.Charts,
		community: svc.Community,
		sessions:  svc.Sessions,
		webDir:    webDir,
		log:       zerolog.Nop(),
		share:     newSessionLimiter(rate.Every(10*time.Second), 3),
	}
}

// WithLogger sets the logger used for request logs and attached to every
// request context.
func (s *Server) WithLogger(log zerolog.Logger) *Server {
	s.log = log
	return s
}

// WithShareLimit sets the per-session share rate.
func (s *Server) WithShareLimit(every time.Duration, burst int) *Server {
	s.share = newSessionLimiter(rate.Every(every), burst)
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/categories", s.handleCategories)

	withSession := http.NewServeMux()
	withSession.HandleFunc("/session", s.handleSession)
	withSession.HandleFunc("/session/end", s.handleSessionEnd)

	withSession.HandleFunc("/waste/entry", s.handleWasteEntry)
	withSession.HandleFunc("/waste/recent", s.handleWasteRecent)
	withSession.HandleFunc("/waste/weekly", s.handleWasteWeekly)

	withSession.HandleFunc("/impact", s.handleImpact)
	withSession.HandleFunc("/carbon", s.handleCarbon)

	withSession.HandleFunc("/charts/composition", s.handleChartsComposition)
	withSession.HandleFunc("/charts/daily", s.handleChartsDaily)

	withSession.HandleFunc("/community", s.handleCommunity)
	withSession.HandleFunc("/community/share", s.handleCommunityShare)

	api.Handle("/", s.sessionMiddleware(withSession))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
