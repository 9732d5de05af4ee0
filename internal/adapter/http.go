package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpAPIClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the HTTP implementation of [APIClient].
// It normalises and validates baseURL; a missing scheme defaults to http.
// A non-positive timeout falls back to 15 seconds.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	// resty.New installs a cookie jar, which carries the session cookie.
	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [APIClient]. It POSTs the account to /api/signup.
// Returns [ErrConflict] (wrapped) when the email is taken and
// [ErrBadRequest] when a field is missing.
func (h *httpAPIClient) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [APIClient]. It POSTs the credentials to /api/login and
// returns the profile of the logged-in user.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	h.logger.Debug().Str("user_id", result.User.ID).Msg("logged in")
	return result.User, nil
}

// Logout implements [APIClient].
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckAuth implements [APIClient].
func (h *httpAPIClient) CheckAuth(ctx context.Context) (models.CheckAuthResponse, error) {
	var result models.CheckAuthResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/checkAuth")
	if err != nil {
		return models.CheckAuthResponse{}, fmt.Errorf("check auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckAuthResponse{}, err
	}

	return result, nil
}

// ListProperties implements [APIClient]. Listings are returned newest first.
func (h *httpAPIClient) ListProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property

	resp, err := h.request(ctx).
		SetResult(&properties).
		Get("/api/properties")
	if err != nil {
		return nil, fmt.Errorf("list properties request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return properties, nil
}

// ListPropertiesByCategory implements [APIClient]. An unknown category
// yields an empty list, not an error.
func (h *httpAPIClient) ListPropertiesByCategory(ctx context.Context, category string) ([]models.Property, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category", errEmptyParameter)
	}

	var properties []models.Property

	resp, err := h.request(ctx).
		SetPathParam("category", category).
		SetResult(&properties).
		Get("/api/properties/category/{category}")
	if err != nil {
		return nil, fmt.Errorf("list properties by category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return properties, nil
}

// AddFavorite implements [APIClient]. Returns [ErrConflict] (wrapped) when
// the listing is already a favorite.
func (h *httpAPIClient) AddFavorite(ctx context.Context, propertyID string) error {
	resp, err := h.request(ctx).
		SetBody(models.FavoriteRequest{PropertyID: propertyID}).
		Post("/api/favorite")
	if err != nil {
		return fmt.Errorf("add favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveFavorite implements [APIClient]. Returns [ErrNotFound] (wrapped)
// when the listing is not a favorite.
func (h *httpAPIClient) RemoveFavorite(ctx context.Context, propertyID string) error {
	resp, err := h.request(ctx).
		SetBody(models.FavoriteRequest{PropertyID: propertyID}).
		Delete("/api/favorite")
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListFavorites implements [APIClient].
func (h *httpAPIClient) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite

	resp, err := h.request(ctx).
		SetResult(&favorites).
		Get("/api/favorites")
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return favorites, nil
}

// ChangeRole implements [APIClient]. Returns [ErrForbidden] (wrapped) for a
// non-admin session.
func (h *httpAPIClient) ChangeRole(ctx context.Context, userID string, role models.Role) (models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return models.User{}, fmt.Errorf("%w: user id", errEmptyParameter)
	}

	var result models.UserResponse

	resp, err := h.request(ctx).
		SetPathParam("userID", userID).
		SetBody(models.ChangeRoleRequest{Role: string(role)}).
		SetResult(&result).
		Put("/api/users/role/{userID}")
	if err != nil {
		return models.User{}, fmt.Errorf("change role request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}
