package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/mock"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

// sequenceIDs hands out "id-1", "id-2", ... in call order.
type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func gifBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.White})

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))
	return buf.Bytes()
}

func validDraft(t *testing.T) models.PropertyDraft {
	return models.PropertyDraft{
		Title:       "Loft",
		Description: "Bright loft near the river",
		Price:       "350000.50",
		Surface:     "82.5",
		Rooms:       "3",
		Type:        "apartment",
		Category:    "sell",
		Address:     "1 Quai des Brumes",
		Diagnostics: "A",
		Equipment:   []string{"balcony", "parking"},
		Photos: []models.PhotoUpload{
			{OriginalName: "front.PNG", Content: pngBytes(t)},
			{OriginalName: "garden.gif", Content: gifBytes(t)},
		},
	}
}

func newTestPropertySvc(t *testing.T) (PropertyService, *mock.MockPropertyStorage, *mock.MockPhotoStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)

	properties := mock.NewMockPropertyStorage(ctrl)
	photos := mock.NewMockPhotoStorage(ctrl)

	inner := NewPropertyService(properties, photos, logger.Nop()).(*propertyService)
	inner.ids = &sequenceIDs{}
	inner.now = func() time.Time { return fixedNow }

	return NewPropertyValidationService().Wrap(inner), properties, photos
}

// ── Publish ──────────────────────────────────────────────────────────────────

func TestPropertyService_Publish_Success(t *testing.T) {
	svc, properties, photos := newTestPropertySvc(t)
	ctx := context.Background()
	millis := "1780315200000"

	gomock.InOrder(
		photos.EXPECT().Save(ctx, millis+"-id-1.png", gomock.Any()).Return(nil),
		photos.EXPECT().Save(ctx, millis+"-id-2.gif", gomock.Any()).Return(nil),
	)
	properties.EXPECT().CreateProperty(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p models.Property) error {
		assert.Equal(t, "id-3", p.ID)
		return nil
	})

	p, err := svc.Publish(ctx, "agent-1", validDraft(t))
	require.NoError(t, err)

	assert.Equal(t, []string{millis + "-id-1.png", millis + "-id-2.gif"}, p.Photos, "photos keep upload order")
	assert.Equal(t, "agent-1", p.AgentID)
	assert.False(t, p.IsFeatured)
	assert.Equal(t, 350000.50, p.Price)
	assert.Equal(t, 82.5, p.Surface)
	assert.Equal(t, 3, p.Rooms)
	assert.Equal(t, models.CategorySell, p.Category)
	assert.Equal(t, []string{"balcony", "parking"}, p.Equipment)
	assert.Equal(t, fixedNow, p.PublishedAt)
}

func TestPropertyService_Publish_UnparsableNumbersBecomeZero(t *testing.T) {
	svc, properties, _ := newTestPropertySvc(t)

	draft := validDraft(t)
	draft.Photos = nil
	draft.Equipment = nil
	draft.Price = "a lot"
	draft.Rooms = "three"

	properties.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).Return(nil)

	p, err := svc.Publish(context.Background(), "agent-1", draft)
	require.NoError(t, err)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Rooms)
	assert.Equal(t, 82.5, p.Surface)
	assert.Equal(t, []string{}, p.Photos)
	assert.Equal(t, []string{}, p.Equipment)
}

func TestPropertyService_Publish_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		mutate  func(*models.PropertyDraft)
		wantErr error
		missing []string
	}{
		{
			name:    "anonymous",
			mutate:  func(*models.PropertyDraft) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "missing fields",
			ownerID: "agent-1",
			mutate: func(d *models.PropertyDraft) {
				d.Price = ""
				d.Address = " "
			},
			wantErr: validators.ErrMissingFields,
			missing: []string{"price", "address"},
		},
		{
			name:    "bad category",
			ownerID: "agent-1",
			mutate:  func(d *models.PropertyDraft) { d.Category = "lease" },
			wantErr: validators.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestPropertySvc(t)

			draft := validDraft(t)
			tt.mutate(&draft)

			_, err := svc.Publish(context.Background(), tt.ownerID, draft)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.missing != nil {
				assert.Equal(t, tt.missing, validators.MissingFields(err))
			}
		})
	}
}

func TestPropertyService_Publish_RejectsNonImage(t *testing.T) {
	svc, _, _ := newTestPropertySvc(t)

	draft := validDraft(t)
	draft.Photos = append(draft.Photos, models.PhotoUpload{OriginalName: "notes.txt", Content: []byte("hello")})

	// nothing may be written when any upload is invalid
	_, err := svc.Publish(context.Background(), "agent-1", draft)
	require.ErrorIs(t, err, ErrInvalidPhoto)
	assert.True(t, strings.Contains(err.Error(), "notes.txt"))
}

func TestPropertyService_Publish_RemovesPhotosWhenStoreFails(t *testing.T) {
	svc, properties, photos := newTestPropertySvc(t)
	ctx := context.Background()

	var saved []string
	photos.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, name string, _ []byte) error {
			saved = append(saved, name)
			return nil
		},
	)
	properties.EXPECT().CreateProperty(ctx, gomock.Any()).Return(store.ErrUserNotFound)
	photos.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, names ...string) error {
		assert.Equal(t, saved, names)
		return nil
	})

	_, err := svc.Publish(ctx, "agent-1", validDraft(t))
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPropertyService_Publish_RemovesEarlierPhotosWhenSaveFails(t *testing.T) {
	svc, _, photos := newTestPropertySvc(t)
	ctx := context.Background()
	millis := "1780315200000"

	gomock.InOrder(
		photos.EXPECT().Save(ctx, millis+"-id-1.png", gomock.Any()).Return(nil),
		photos.EXPECT().Save(ctx, millis+"-id-2.gif", gomock.Any()).Return(errors.New("disk full")),
		photos.EXPECT().Delete(ctx, millis+"-id-1.png").Return(nil),
	)

	_, err := svc.Publish(ctx, "agent-1", validDraft(t))
	assert.Error(t, err)
}

// ── Reads ────────────────────────────────────────────────────────────────────

func TestPropertyService_ListPropertiesByCategory(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		svc, properties, _ := newTestPropertySvc(t)
		want := []models.Property{{ID: "p1", Category: models.CategoryRent}}

		properties.EXPECT().ListPropertiesByCategory(gomock.Any(), models.CategoryRent).Return(want, nil)

		got, err := svc.ListPropertiesByCategory(context.Background(), "rent")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown category is an empty list", func(t *testing.T) {
		svc, _, _ := newTestPropertySvc(t)

		got, err := svc.ListPropertiesByCategory(context.Background(), "auction")
		require.NoError(t, err)
		assert.Equal(t, []models.Property{}, got)
	})
}

func TestPropertyService_ListAndGet(t *testing.T) {
	svc, properties, _ := newTestPropertySvc(t)
	ctx := context.Background()

	properties.EXPECT().ListProperties(ctx).Return([]models.Property{{ID: "p1"}}, nil)
	properties.EXPECT().GetProperty(ctx, "p1").Return(models.Property{ID: "p1"}, nil)
	properties.EXPECT().GetProperty(ctx, "nope").Return(models.Property{}, store.ErrPropertyNotFound)

	list, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	p, err := svc.GetProperty(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = svc.GetProperty(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrPropertyNotFound)
}

func TestPhotoFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "1700000000123-abc.jpg", photoFilename(now, "abc", ".jpg"))
	assert.Equal(t, "1700000000123-abc", photoFilename(now, "abc", ""))
}

func TestCheckPhotos_ExtensionFollowsContent(t *testing.T) {
	var jpg bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpg, image.NewGray(image.Rect(0, 0, 1, 1)), nil))

	exts, err := checkPhotos([]models.PhotoUpload{
		{OriginalName: "front.PNG", Content: pngBytes(t)},
		{OriginalName: "photo.jpeg", Content: jpg.Bytes()},
		{OriginalName: "page.html", Content: gifBytes(t)},
		{OriginalName: `a.p\ng`, Content: pngBytes(t)},
		{OriginalName: "noext", Content: pngBytes(t)},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{".png", ".jpg", ".gif", ".png", ".png"}, exts)
}

func TestPropertyService_Publish_HTMLNamedImageStoredAsImage(t *testing.T) {
	svc, properties, photos := newTestPropertySvc(t)
	ctx := context.Background()
	millis := "1780315200000"

	// a GIF header followed by markup still decodes as a GIF
	content := append(gifBytes(t), []byte("<html><script>fetch('/api/users')</script></html>")...)

	draft := validDraft(t)
	draft.Photos = []models.PhotoUpload{{OriginalName: "evil.html", Content: content}}

	photos.EXPECT().Save(ctx, millis+"-id-1.gif", content).Return(nil)
	properties.EXPECT().CreateProperty(ctx, gomock.Any()).Return(nil)

	p, err := svc.Publish(ctx, "agent-1", draft)

	require.NoError(t, err)
	assert.Equal(t, []string{millis + "-id-1.gif"}, p.Photos)
}
