package httpstream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() http.Handler {
	// Millisecond pacing keeps real-time playback short in tests.
	return NewHandler(WithFrameInterval(time.Millisecond))
}

func TestHealthz(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestPlayStreamsScript(t *testing.T) {
	h := newTestHandler()
	body := strings.NewReader(`
type_delay: 1
steps:
  - type: "hi"
`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/play", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	out := rec.Body.String()
	assert.Contains(t, out, `"op":"attach"`)
	assert.Contains(t, out, `"visible":"hi"`)
	assert.True(t, strings.HasSuffix(out, "event: done\ndata: {}\n\n"),
		"stream ends with the done event")
}

func TestPlayRejectsInvalidScript(t *testing.T) {
	h := newTestHandler()
	tests := []struct {
		name string
		body string
	}{
		{"not yaml", "steps: ["},
		{"no steps", "title: x\n"},
		{"bad step", "steps:\n  - shout: hi\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/play", strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMetricsCountPlayback(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/play",
		strings.NewReader("type_delay: 1\nsteps:\n  - type: \"a\"\n")))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `typeline_commands_total{kind="type_character"} 1`)
}
