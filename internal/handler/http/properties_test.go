package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

type formPart struct {
	field, filename, content string
}

// multipartRequest builds a publish request carrying the test session.
func multipartRequest(t *testing.T, values url.Values, files []formPart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, vals := range values {
		for _, v := range vals {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/properties", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "sid", Value: testSessionID})
	return req
}

func publishRouter(t *testing.T, publish func(context.Context, string, models.PropertyDraft) (models.Property, error)) http.Handler {
	t.Helper()
	services := newTestServices()
	services.PropertyService = &fakePropertyService{publishFn: publish}
	sessionFor(services, testMember)
	_, router := newTestRouter(t, services)
	return router
}

// ─────────────────────────────────────────────
// publish
// ─────────────────────────────────────────────

func TestPublishProperty_ReadsMultipartForm(t *testing.T) {
	var got models.PropertyDraft
	router := publishRouter(t, func(_ context.Context, ownerID string, draft models.PropertyDraft) (models.Property, error) {
		assert.Equal(t, testMember.ID, ownerID)
		got = draft
		return models.Property{ID: "p1", Title: draft.Title, AgentID: ownerID, Photos: []string{"1-a.png", "2-b.jpg"}}, nil
	})

	values := url.Values{
		"title":     {"Loft"},
		"price":     {"1000"},
		"category":  {"rent"},
		"equipment": {"balcony", "lift"},
	}
	files := []formPart{
		{"photos", "a.png", "first"},
		{"photos[]", "b.jpg", "second"},
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, values, files))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Property published successfully!", resp.Message)
	assert.Equal(t, "p1", resp.Property.ID)

	assert.Equal(t, "Loft", got.Title)
	assert.Equal(t, "1000", got.Price)
	assert.Equal(t, "rent", got.Category)
	assert.Equal(t, []string{"balcony", "lift"}, got.Equipment)
	require.Len(t, got.Photos, 2)
	assert.Equal(t, "a.png", got.Photos[0].OriginalName)
	assert.Equal(t, []byte("first"), got.Photos[0].Content)
	assert.Equal(t, "b.jpg", got.Photos[1].OriginalName)
}

func TestPublishProperty_SingleEquipmentValue(t *testing.T) {
	var got models.PropertyDraft
	router := publishRouter(t, func(_ context.Context, _ string, draft models.PropertyDraft) (models.Property, error) {
		got = draft
		return models.Property{}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, url.Values{"equipment": {"garden"}}, nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"garden"}, got.Equipment)
	assert.Empty(t, got.Photos)
}

func TestPublishProperty_URLEncodedForm(t *testing.T) {
	var got models.PropertyDraft
	router := publishRouter(t, func(_ context.Context, _ string, draft models.PropertyDraft) (models.Property, error) {
		got = draft
		return models.Property{}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader("title=Loft&rooms=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: testSessionID})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Loft", got.Title)
	assert.Equal(t, "2", got.Rooms)
	assert.Equal(t, []string{}, got.Equipment)
}

func TestPublishProperty_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing fields",
			err:        &validators.MissingFieldsError{Fields: []string{"price", "address"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Missing required fields: price, address","fields":["price","address"]}`,
		},
		{
			name:       "bad category",
			err:        validators.ErrInvalidCategory,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Category must be either 'sell' or 'rent'"}`,
		},
		{
			name:       "not an image",
			err:        service.ErrInvalidPhoto,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Only image files are allowed"}`,
		},
		{
			name:       "store failure",
			err:        store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := publishRouter(t, func(context.Context, string, models.PropertyDraft) (models.Property, error) {
				return models.Property{}, tt.err
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, multipartRequest(t, url.Values{"title": {"x"}}, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestPublishProperty_Anonymous(t *testing.T) {
	router := publishRouter(t, func(context.Context, string, models.PropertyDraft) (models.Property, error) {
		t.Fatal("publish reached without a session")
		return models.Property{}, nil
	})

	req := multipartRequest(t, url.Values{"title": {"x"}}, nil)
	req.Header.Del("Cookie")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublishProperty_BodyTooLarge(t *testing.T) {
	router := publishRouter(t, func(context.Context, string, models.PropertyDraft) (models.Property, error) {
		t.Fatal("publish reached with an oversized body")
		return models.Property{}, nil
	})

	big := strings.Repeat("x", 2<<20)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartRequest(t, nil, []formPart{{"photos", "huge.png", big}}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"message":"Uploaded files are too large"}`, rec.Body.String())
}

func TestPublishProperty_MalformedMultipart(t *testing.T) {
	router := publishRouter(t, func(context.Context, string, models.PropertyDraft) (models.Property, error) {
		t.Fatal("publish reached with a broken form")
		return models.Property{}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader("--nope\r\n"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=other")
	req.AddCookie(&http.Cookie{Name: "sid", Value: testSessionID})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// reads
// ─────────────────────────────────────────────

func TestListProperties(t *testing.T) {
	services := newTestServices()
	services.PropertyService = &fakePropertyService{
		listFn: func(context.Context) ([]models.Property, error) {
			return []models.Property{{ID: "p1"}, {ID: "p2"}}, nil
		},
	}
	_, router := newTestRouter(t, services)

	rec := serve(router, http.MethodGet, "/api/properties", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListPropertiesByCategory(t *testing.T) {
	services := newTestServices()
	services.PropertyService = &fakePropertyService{
		listByCategoryFn: func(_ context.Context, category string) ([]models.Property, error) {
			if category == "sell" {
				return []models.Property{{ID: "p1", Category: models.CategorySell}}, nil
			}
			return []models.Property{}, nil
		},
	}
	_, router := newTestRouter(t, services)

	rec := serve(router, http.MethodGet, "/api/properties/category/sell", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p1"`)

	rec = serve(router, http.MethodGet, "/api/properties/category/auction", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestGetProperty(t *testing.T) {
	services := newTestServices()
	services.PropertyService = &fakePropertyService{
		getFn: func(_ context.Context, id string) (models.Property, error) {
			if id == "p1" {
				return models.Property{ID: "p1", Title: "Loft"}, nil
			}
			return models.Property{}, store.ErrPropertyNotFound
		},
	}
	_, router := newTestRouter(t, services)

	rec := serve(router, http.MethodGet, "/api/properties/p1", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Loft"`)

	rec = serve(router, http.MethodGet, "/api/properties/nope", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Property not found"}`, rec.Body.String())
}
