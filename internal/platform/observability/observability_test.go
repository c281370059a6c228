package observability

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerTo(&buf, "production", "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Str("rule", "link").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"rule":"link"`)
	assert.Contains(t, out, `"time":`)
}

func TestNewLogger_UnknownLevelIsInfo(t *testing.T) {
	logger := NewLoggerTo(&bytes.Buffer{}, "production", "chatty")

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLogger_LocalIsConsole(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerTo(&buf, "local", "debug")
	logger.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestServerHandler(t *testing.T) {
	logger := zerolog.Nop()
	app := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	notReady := errors.New("lexicon not loaded")
	ready := true

	srv := NewServer(0, app, func(context.Context) error {
		if !ready {
			return notReady
		}

		return nil
	}, &logger)

	h := srv.Handler()

	tests := []struct {
		name   string
		path   string
		ready  bool
		status int
		body   string
	}{
		{"healthz", "/healthz", true, http.StatusOK, "OK"},
		{"readyz ok", "/readyz", true, http.StatusOK, "OK"},
		{"readyz failing", "/readyz", false, http.StatusServiceUnavailable, "lexicon not loaded"},
		{"metrics", "/metrics", true, http.StatusOK, "go_goroutines"},
		{"app", "/v1/anything", true, http.StatusTeapot, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ready = tt.ready

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
