package store

import (
	"context"
	"time"

	"github.com/DATCH7/real-estate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.User, error)
	// DeleteUser removes the user together with their listings, favorites
	// and messages, and returns the photo filenames of the removed listings.
	DeleteUser(ctx context.Context, userID string) ([]string, error)
}

type PropertyRepository interface {
	CreateProperty(ctx context.Context, property models.Property) error
	GetProperty(ctx context.Context, propertyID string) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	ListPropertiesByCategory(ctx context.Context, category models.Category) ([]models.Property, error)
}

// PropertyStorage is a PropertyRepository whose list reads may be served
// from a cache. InvalidateListings drops every cached list.
type PropertyStorage interface {
	PropertyRepository
	InvalidateListings(ctx context.Context)
}

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, favorite models.Favorite) error
	RemoveFavorite(ctx context.Context, userID, propertyID string) error
	// ListFavorites returns the user's favorites with Property filled in,
	// oldest first.
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) error
	// ListMessages returns messages sent or received by the user, oldest first.
	ListMessages(ctx context.Context, userID string) ([]models.Message, error)
}

// SessionStore persists login sessions. Get returns ErrSessionNotFound for
// unknown and expired sessions alike.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, sessionID string) (models.Session, error)
	Delete(ctx context.Context, sessionID string) error
	// DeleteExpired purges sessions that expired before now and reports how
	// many were removed. Stores with native expiry return 0.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PropertyCache holds serialized listing pages under string keys. Keys are
// built per generation: Invalidate moves to a new generation, so a page
// written late by a reader that loaded rows before the invalidation is never
// served.
type PropertyCache interface {
	// Generation returns the current generation; ok is false when the cache
	// cannot be used.
	Generation(ctx context.Context) (generation int64, ok bool)
	GetList(ctx context.Context, key string) ([]models.Property, bool)
	SetList(ctx context.Context, key string, properties []models.Property)
	Invalidate(ctx context.Context)
}

// PhotoStorage keeps uploaded photo files addressed by filename.
type PhotoStorage interface {
	Save(ctx context.Context, filename string, content []byte) error
	Delete(ctx context.Context, filenames ...string) error
	Dir() string
}
