package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/models"
)

// Form keys accepted for the repeated publish fields.
var (
	photoFormKeys     = []string{"photos", "photos[]"}
	equipmentFormKeys = []string{"equipment", "equipment[]"}
)

func (h *Handler) publishProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	draft, err := h.readPropertyDraft(w, r)
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()
	if err != nil {
		writeError(w, r, err)
		return
	}

	property, err := h.services.PropertyService.Publish(r.Context(), currentUser(r).ID, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("property_id", property.ID).Int("photos", len(property.Photos)).Msg("property published")
	utils.WriteJSON(w, models.PropertyResponse{Message: "Property published successfully!", Property: property}, http.StatusCreated)
}

// readPropertyDraft parses a multipart (or url-encoded) publish form.
// Photo parts are read fully into memory; the request body is capped at the
// configured upload size.
func (h *Handler) readPropertyDraft(w http.ResponseWriter, r *http.Request) (models.PropertyDraft, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	err := r.ParseMultipartForm(h.maxUploadSize)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return models.PropertyDraft{}, fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, tooLarge.Limit)
	case err != nil && !errors.Is(err, http.ErrNotMultipart):
		return models.PropertyDraft{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	draft := models.PropertyDraft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Surface:     r.FormValue("surface"),
		Rooms:       r.FormValue("rooms"),
		Type:        r.FormValue("type"),
		Category:    r.FormValue("category"),
		Address:     r.FormValue("address"),
		Diagnostics: r.FormValue("diagnostics"),
		Equipment:   []string{},
	}

	for _, key := range equipmentFormKeys {
		draft.Equipment = append(draft.Equipment, r.Form[key]...)
	}

	if r.MultipartForm == nil {
		return draft, nil
	}

	for _, key := range photoFormKeys {
		for _, fh := range r.MultipartForm.File[key] {
			content, err := readUpload(fh)
			if err != nil {
				return models.PropertyDraft{}, err
			}
			draft.Photos = append(draft.Photos, models.PhotoUpload{OriginalName: fh.Filename, Content: content})
		}
	}

	return draft, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingUpload, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingUpload, err)
	}

	return content, nil
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.services.PropertyService.ListProperties(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

func (h *Handler) listPropertiesByCategory(w http.ResponseWriter, r *http.Request) {
	properties, err := h.services.PropertyService.ListPropertiesByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.services.PropertyService.GetProperty(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, property, http.StatusOK)
}
