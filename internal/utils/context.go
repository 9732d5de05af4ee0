// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes typed context keys for the authenticated user and session,
// password hashing, HTTP response writing and id generation.
package utils

import (
	"context"

	"github.com/DATCH7/real-estate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey stores the [models.User] resolved from the session cookie.
	UserCtxKey = contextKey("user")

	// SessionIDCtxKey stores the id of the live session carried by the request.
	SessionIDCtxKey = contextKey("sessionID")
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
//   - ok == true: the request is authenticated
//   - ok == false: the request is anonymous
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// IsAdmin reports whether the authenticated user holds the admin role.
// Anonymous requests are never admin.
func IsAdmin(ctx context.Context) bool {
	user, ok := GetUserFromContext(ctx)
	return ok && user.Role.IsAdmin()
}

// WithSessionID returns a copy of ctx carrying the live session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the live session id from the context.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
