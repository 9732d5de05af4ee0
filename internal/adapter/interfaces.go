// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the real-estate HTTP API.
//
// [APIClient] keeps the session cookie issued by login in a cookie jar and
// sends it with every following request. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/DATCH7/real-estate/models"
)

// APIClient defines the operations of the real-estate API used by Go
// callers.
type APIClient interface {
	// Signup creates an account. It does not log in.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login opens a session; the session cookie is stored for subsequent
	// calls.
	Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error)

	// Logout closes the current session and drops the session cookie.
	Logout(ctx context.Context) error

	// CheckAuth reports whether the client holds a live session.
	CheckAuth(ctx context.Context) (models.CheckAuthResponse, error)

	ListProperties(ctx context.Context) ([]models.Property, error)
	ListPropertiesByCategory(ctx context.Context, category string) ([]models.Property, error)

	AddFavorite(ctx context.Context, propertyID string) error
	RemoveFavorite(ctx context.Context, propertyID string) error
	ListFavorites(ctx context.Context) ([]models.Favorite, error)

	// ChangeRole sets the role of a user. Requires an admin session.
	ChangeRole(ctx context.Context, userID string, role models.Role) (models.User, error)
}
