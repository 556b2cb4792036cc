package adapthttp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	s := (&Server{}).WithLogger(zerolog.New(&buf))

	var ctxLogger *zerolog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = zerolog.Ctx(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test-path", nil)
	w := httptest.NewRecorder()
	s.loggingMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	require.NotNil(t, ctxLogger)
	assert.NotEqual(t, zerolog.Disabled, ctxLogger.GetLevel(), "request context carries the server logger")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/test-path", line["path"])
	assert.Equal(t, 418.0, line["status"])
	assert.Equal(t, "request", line["message"])
}

func TestSessionLimiter(t *testing.T) {
	l := newSessionLimiter(rate.Every(time.Hour), 2)
	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	assert.True(t, l.allow("b"))

	l.forget("a")
	assert.True(t, l.allow("a"))
}
