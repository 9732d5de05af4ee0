package http

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServePhoto(t *testing.T) {
	h, router := newTestRouter(t, newTestServices())
	require.NoError(t, os.WriteFile(filepath.Join(h.photoDir, "1700000000000-abc.png"), []byte("png-bytes"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(h.photoDir, "1700000000000-old.html"), []byte("<script></script>"), 0o600))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"stored photo", "/uploads/1700000000000-abc.png", http.StatusOK, "png-bytes"},
		{"missing photo", "/uploads/nope.png", http.StatusNotFound, ""},
		{"escaped traversal", "/uploads/..%2Fsecret", http.StatusNotFound, ""},
		{"directory listing", "/uploads/", http.StatusNotFound, ""},
		{"non-image extension", "/uploads/1700000000000-old.html", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.path, nil, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestServePhoto_ImageHeaders(t *testing.T) {
	h, router := newTestRouter(t, newTestServices())
	// markup inside an image file must not be sniffed as HTML
	body := []byte("GIF89a<html><script>fetch('/api/users')</script></html>")
	require.NoError(t, os.WriteFile(filepath.Join(h.photoDir, "1700000000000-abc.gif"), body, 0o600))

	rec := serve(router, http.MethodGet, "/uploads/1700000000000-abc.gif", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/gif", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
