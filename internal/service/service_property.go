package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/models"
)

// propertyService publishes and reads listings. Drafts reaching Publish are
// assumed valid; validation is layered on top by propertyValidationService.
type propertyService struct {
	propertyStorage store.PropertyStorage
	photoStorage    store.PhotoStorage
	ids             IDGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewPropertyService(properties store.PropertyStorage, photos store.PhotoStorage, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyStorage: properties,
		photoStorage:    photos,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

// Publish stores the photos, then the listing. If the listing cannot be
// stored, every photo written for it is removed again.
func (s *propertyService) Publish(ctx context.Context, ownerID string, draft models.PropertyDraft) (models.Property, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.Property{}, ErrUnauthenticated
	}

	exts, err := checkPhotos(draft.Photos)
	if err != nil {
		log.Debug().Err(err).Str("func", "*propertyService.Publish").Msg("rejected upload")
		return models.Property{}, err
	}

	now := s.now().UTC()
	photos, err := s.savePhotos(ctx, now, draft.Photos, exts)
	if err != nil {
		return models.Property{}, err
	}

	equipment := draft.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	property := models.Property{
		ID:          s.ids.Generate(),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Price:       parseFloat(draft.Price),
		Surface:     parseFloat(draft.Surface),
		Rooms:       parseInt(draft.Rooms),
		Type:        strings.TrimSpace(draft.Type),
		Category:    models.Category(strings.TrimSpace(draft.Category)),
		Address:     strings.TrimSpace(draft.Address),
		Photos:      photos,
		Diagnostics: strings.TrimSpace(draft.Diagnostics),
		Equipment:   equipment,
		PublishedAt: now,
		AgentID:     ownerID,
		IsFeatured:  false,
	}

	if err = s.propertyStorage.CreateProperty(ctx, property); err != nil {
		log.Err(err).Str("func", "*propertyService.Publish").Int("photos", len(photos)).Msg("error storing property, removing uploaded photos")
		if delErr := s.photoStorage.Delete(ctx, photos...); delErr != nil {
			log.Err(delErr).Str("func", "*propertyService.Publish").Msg("error removing uploaded photos")
		}
		return models.Property{}, fmt.Errorf("error storing property: %w", err)
	}

	return property, nil
}

// savePhotos writes the uploads in order under fresh unique names, exts[i]
// being the extension of uploads[i]. On a failed write the files already
// written are removed.
func (s *propertyService) savePhotos(ctx context.Context, now time.Time, uploads []models.PhotoUpload, exts []string) ([]string, error) {
	names := make([]string, 0, len(uploads))
	for i, upload := range uploads {
		name := photoFilename(now, s.ids.Generate(), exts[i])
		if err := s.photoStorage.Save(ctx, name, upload.Content); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*propertyService.savePhotos").Msg("error saving photo")
			_ = s.photoStorage.Delete(ctx, names...)
			return nil, fmt.Errorf("error saving photo: %w", err)
		}
		names = append(names, name)
	}

	return names, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.propertyStorage.ListProperties(ctx)
}

// ListPropertiesByCategory returns an empty list for values other than
// "sell" and "rent".
func (s *propertyService) ListPropertiesByCategory(ctx context.Context, category string) ([]models.Property, error) {
	c, err := models.ParseCategory(category)
	if err != nil {
		return []models.Property{}, nil
	}

	return s.propertyStorage.ListPropertiesByCategory(ctx, c)
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	return s.propertyStorage.GetProperty(ctx, propertyID)
}

// photoExtensions maps the format names of the registered image decoders
// to the extension a stored photo gets.
var photoExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"bmp":  ".bmp",
	"tiff": ".tiff",
	"webp": ".webp",
}

// checkPhotos accepts only content one of the registered image decoders
// recognizes: JPEG, PNG, GIF, BMP, TIFF or WebP. It returns the extension of
// each photo derived from its decoded format; the client's filename is
// ignored.
func checkPhotos(uploads []models.PhotoUpload) ([]string, error) {
	exts := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		_, format, err := image.DecodeConfig(bytes.NewReader(upload.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPhoto, upload.OriginalName)
		}
		ext, ok := photoExtensions[format]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPhoto, upload.OriginalName)
		}
		exts = append(exts, ext)
	}

	return exts, nil
}

// photoFilename builds "<unix-millis>-<random><ext>".
func photoFilename(now time.Time, random, ext string) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + random + ext
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}
