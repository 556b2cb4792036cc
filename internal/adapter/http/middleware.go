package adapthttp

import (
	"context"
	"net/http"
	"time"

	"ecotracker/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookie = "session"

// newSessionCookie builds the session cookie. A negative maxAge clears it.
func newSessionCookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	}
}

// sessionMiddleware resumes the caller's session from its cookie, or starts a
// new one on first access, and stores it in the request context.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			token = cookie.Value
		}

		sess, _, err := s.sessions.ResumeOrStart(r.Context(), token)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		// Resume slides the server-side expiry, so the cookie follows it.
		http.SetCookie(w, newSessionCookie(r, sess.ID, int(s.sessions.TTL().Seconds())))

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromContext(r *http.Request) *domain.Session {
	sess, _ := r.Context().Value(sessionContextKey).(*domain.Session)
	return sess
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware attaches the server logger to the request context and
// logs one line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(s.log.WithContext(r.Context())))
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
