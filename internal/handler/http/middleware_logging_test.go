package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/utils"
)

// requestWithLogger attaches a buffer-backed logger the way withTraceID does.
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_RecordsResponse(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"explicit 201", http.StatusCreated, "created", http.StatusCreated},
		{"implicit 200", 0, "ok", http.StatusOK},
		{"404 no body", http.StatusNotFound, "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, requestWithLogger(http.MethodGet, "/api/properties", &buf))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/api/properties", entry["uri"])
			assert.Equal(t, "GET", entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
			assert.NotContains(t, entry, "user_id")
		})
	}
}

func TestWithLogging_IncludesSessionUser(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	// stands in for withSession, which runs inside withLogging
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rememberContext(w, utils.WithUser(r.Context(), testMember))
		w.WriteHeader(http.StatusNoContent)
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/favorites", &buf))

	assert.Contains(t, buf.String(), `"user_id":"u1"`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))
	})
}
