package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotracker/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", domain.ErrInvalidEntry), http.StatusBadRequest},
		{domain.ErrInvalidProgressData, http.StatusBadRequest},
		{domain.ErrSessionNotFound, http.StatusUnauthorized},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestIntQuery(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 7},
		{"?days=3", 3},
		{"?days=0", 7},
		{"?days=-4", 7},
		{"?days=abc", 7},
		{"?days=9999", 366},
	}
	for _, tc := range tests {
		r := httptest.NewRequest(http.MethodGet, "/charts/daily"+tc.query, nil)
		assert.Equal(t, tc.want, intQuery(r, "days", 7, 366), tc.query)
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	require.NoError(t, decodeJSON([]byte(`{"a":1}`), &v, false))
	assert.Equal(t, 1, v.A)
	assert.Error(t, decodeJSON([]byte(`{"a":1,"b":2}`), &v, false))
	assert.Error(t, decodeJSON([]byte(`{"a":1} {"a":2}`), &v, false))
}

func TestSPAFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>index</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))
	h := spaFromDisk(dir)

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/app.js", http.StatusOK},
		{"/history", http.StatusOK},
		{"/missing.css", http.StatusNotFound},
	}
	for _, tc := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.want, w.Code, tc.path)
	}
}

func TestParseProgress_ErrorsAreInvalidProgressData(t *testing.T) {
	bodies := []string{
		`{"totalWaste":1,"recycledWaste":1,"recyclingRate":1,"extra":1}`,
		`{"totalWaste":1,"recycledWaste":1}`,
		`{"totalWaste":"lots","recycledWaste":1,"recyclingRate":1}`,
		`[1,2`,
	}
	for _, b := range bodies {
		_, err := parseProgress([]byte(b))
		assert.ErrorIs(t, err, domain.ErrInvalidProgressData, b)
	}

	got, err := parseProgress([]byte(`{"totalWaste":"10","recycledWaste":4,"recyclingRate":40.5}`))
	require.NoError(t, err)
	assert.Equal(t, [3]float64{10, 4, 40.5}, got)
}

func TestNewSessionCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	issue := newSessionCookie(r, "token", 3600)
	cleared := newSessionCookie(r, "", -1)

	assert.Equal(t, 3600, issue.MaxAge)
	assert.Equal(t, -1, cleared.MaxAge)
	for _, c := range []*http.Cookie{issue, cleared} {
		assert.Equal(t, sessionCookie, c.Name)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	}
}
