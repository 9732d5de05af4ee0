package http

import (
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// photoContentTypes lists the extensions stored photos can carry. Anything
// else is not a photo and is not served.
var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

// servePhoto serves a stored photo by its bare filename. Names that contain
// a path separator, even percent-encoded, never reach the file system. The
// content type is fixed by the extension and never sniffed.
func (h *Handler) servePhoto(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil || name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		h.notFound(w, r)
		return
	}

	contentType, ok := photoContentTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		h.notFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeFile(w, r, filepath.Join(h.photoDir, name))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
