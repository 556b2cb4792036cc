package adapthttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/rs/zerolog"

	"ecotracker/internal/domain"
)

// maxBody bounds every JSON request body.
const maxBody = 1 << 16

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// statusFor maps service errors onto HTTP statuses. Validation failures at the
// write boundary are the caller's fault; anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, domain.ErrInvalidProgressData):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the status for err and logs server-side
// failures on the request logger.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, status, err)
}

// allowMethod answers 405 unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	w.WriteHeader(http.StatusMethodNotAllowed)
	return false
}

// readBody reads at most maxBody bytes and returns nil for a blank body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return raw, nil
}

// decodeJSON decodes exactly one JSON value from raw into dst and rejects
// unknown struct fields. With numbers set, numbers decode as json.Number.
func decodeJSON(raw []byte, dst any, numbers bool) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if numbers {
		dec.UseNumber()
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return errors.New("invalid json: trailing data")
	}
	return nil
}

func parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := readBody(w, r)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.New("invalid json: empty body")
	}
	return decodeJSON(raw, dst, false)
}

// intQuery reads a positive integer query parameter capped at ceiling. Missing or
// malformed values yield fallback.
func intQuery(r *http.Request, key string, fallback, ceiling int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return min(n, ceiling)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// spaFromDisk serves the UI from dir. Existing files are served as-is, other
// extension-less paths fall back to index.html and missing assets are 404.
func spaFromDisk(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if p != "/" {
			if _, err := os.Stat(path.Join(dir, p)); err == nil {
				files.ServeHTTP(w, r)
				return
			}
			if path.Ext(p) != "" {
				http.NotFound(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	})
}
