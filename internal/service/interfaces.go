package service

import (
	"context"

	"github.com/DATCH7/real-estate/models"
)

// AuthService owns accounts and login sessions.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	// Login fails with ErrAlreadyLoggedIn when ctx already carries a user.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	// ResolveSession returns the current user record behind a session id.
	// Unknown or expired sessions yield store.ErrSessionNotFound; a session
	// whose user was deleted yields ErrStaleSession.
	ResolveSession(ctx context.Context, sessionID string) (models.User, error)
	// EnsureAdmin creates or promotes the bootstrap administrator.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// UserService is the admin-only user management.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ChangeRole(ctx context.Context, userID string, req models.ChangeRoleRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type PropertyService interface {
	Publish(ctx context.Context, ownerID string, draft models.PropertyDraft) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	ListPropertiesByCategory(ctx context.Context, category string) ([]models.Property, error)
	GetProperty(ctx context.Context, propertyID string) (models.Property, error)
}

// PropertyServiceWrapper defines middleware composition for PropertyService.
// Implementations wrap an existing PropertyService to add behavior such as
// validation.
type PropertyServiceWrapper interface {
	Wrap(PropertyService) PropertyService
}

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID string, req models.FavoriteRequest) error
	RemoveFavorite(ctx context.Context, userID string, req models.FavoriteRequest) error
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
}

type MessageService interface {
	SendMessage(ctx context.Context, senderID string, req models.MessageRequest) (models.Message, error)
	ListMessages(ctx context.Context, userID string) ([]models.Message, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// PasswordHasher is satisfied by *utils.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// IDGenerator is satisfied by *utils.UUIDGenerator.
type IDGenerator interface {
	Generate() string
}
