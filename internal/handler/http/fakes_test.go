package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/models"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// Each fake implements one service interface with overridable fn fields.
// A nil field panics, which fails the test that reached it unexpectedly.

type fakeAuthService struct {
	signupFn         func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.Session, error)
	logoutFn         func(ctx context.Context, sessionID string) error
	resolveSessionFn func(ctx context.Context, sessionID string) (models.User, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return f.signupFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	return f.logoutFn(ctx, sessionID)
}

func (f *fakeAuthService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	if f.resolveSessionFn == nil {
		return models.User{}, store.ErrSessionNotFound
	}
	return f.resolveSessionFn(ctx, sessionID)
}

func (f *fakeAuthService) EnsureAdmin(context.Context, string, string) error {
	return nil
}

type fakeUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	changeRoleFn func(ctx context.Context, userID string, req models.ChangeRoleRequest) (models.User, error)
	deleteUserFn func(ctx context.Context, userID string) error
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserService) ChangeRole(ctx context.Context, userID string, req models.ChangeRoleRequest) (models.User, error) {
	return f.changeRoleFn(ctx, userID, req)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, userID string) error {
	return f.deleteUserFn(ctx, userID)
}

type fakePropertyService struct {
	publishFn        func(ctx context.Context, ownerID string, draft models.PropertyDraft) (models.Property, error)
	listFn           func(ctx context.Context) ([]models.Property, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Property, error)
	getFn            func(ctx context.Context, propertyID string) (models.Property, error)
}

func (f *fakePropertyService) Publish(ctx context.Context, ownerID string, draft models.PropertyDraft) (models.Property, error) {
	return f.publishFn(ctx, ownerID, draft)
}

func (f *fakePropertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return f.listFn(ctx)
}

func (f *fakePropertyService) ListPropertiesByCategory(ctx context.Context, category string) ([]models.Property, error) {
	return f.listByCategoryFn(ctx, category)
}

func (f *fakePropertyService) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	return f.getFn(ctx, propertyID)
}

type fakeFavoriteService struct {
	addFn    func(ctx context.Context, userID string, req models.FavoriteRequest) error
	removeFn func(ctx context.Context, userID string, req models.FavoriteRequest) error
	listFn   func(ctx context.Context, userID string) ([]models.Favorite, error)
}

func (f *fakeFavoriteService) AddFavorite(ctx context.Context, userID string, req models.FavoriteRequest) error {
	return f.addFn(ctx, userID, req)
}

func (f *fakeFavoriteService) RemoveFavorite(ctx context.Context, userID string, req models.FavoriteRequest) error {
	return f.removeFn(ctx, userID, req)
}

func (f *fakeFavoriteService) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	return f.listFn(ctx, userID)
}

type fakeMessageService struct {
	sendFn func(ctx context.Context, senderID string, req models.MessageRequest) (models.Message, error)
	listFn func(ctx context.Context, userID string) ([]models.Message, error)
}

func (f *fakeMessageService) SendMessage(ctx context.Context, senderID string, req models.MessageRequest) (models.Message, error) {
	return f.sendFn(ctx, senderID, req)
}

func (f *fakeMessageService) ListMessages(ctx context.Context, userID string) ([]models.Message, error) {
	return f.listFn(ctx, userID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSessionID = "session-token"

var (
	testMember = models.User{ID: "u1", FirstName: "Jane", Email: "jane@estate.test", Role: models.RoleUser}
	testAdmin  = models.User{ID: "a1", FirstName: "Root", Email: "root@estate.test", Role: models.RoleAdmin}
)

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()
	return config.StructuredConfig{
		App: config.App{
			SessionCookieName: "sid",
			SessionLifetime:   24 * time.Hour,
		},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadSize:  1 << 20,
		},
		Storage: config.Storage{
			Files: config.Files{PhotoDir: t.TempDir()},
		},
	}
}

// newTestServices returns Services whose fakes are all non-nil, so routes
// can be registered and reached; tests override the fn fields they need.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     &fakeAuthService{},
		UserService:     &fakeUserService{},
		PropertyService: &fakePropertyService{},
		FavoriteService: &fakeFavoriteService{},
		MessageService:  &fakeMessageService{},
		AppInfoService:  &fakeAppInfoService{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, services *service.Services) (*Handler, *chi.Mux) {
	t.Helper()
	h := NewHandler(services, testConfig(t), logger.Nop())
	return h, h.Init()
}

// sessionFor makes the fake auth service resolve testSessionID to user.
func sessionFor(services *service.Services, user models.User) {
	services.AuthService.(*fakeAuthService).resolveSessionFn = func(_ context.Context, sessionID string) (models.User, error) {
		if sessionID != testSessionID {
			return models.User{}, store.ErrSessionNotFound
		}
		return user, nil
	}
}

// serve runs one request through router; withCookie attaches the test
// session cookie.
func serve(router http.Handler, method, path string, body io.Reader, withCookie bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withCookie {
		req.AddCookie(&http.Cookie{Name: "sid", Value: testSessionID})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
