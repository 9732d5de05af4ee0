package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
)

// Storages aggregates every storage component the services depend on.
type Storages struct {
	UserRepository     UserRepository
	PropertyStorage    PropertyStorage
	FavoriteRepository FavoriteRepository
	MessageRepository  MessageRepository
	SessionStore       SessionStore
	PhotoStorage       PhotoStorage

	db    *DB
	redis *redis.Client
}

// NewStorages opens the database, applies migrations and, when an address is
// configured, connects redis for sessions and the listing cache. Without
// redis sessions live in SQL and listings are not cached.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	photos, err := NewPhotoFileStorage(cfg.Files.PhotoDir, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Storages{
		UserRepository:     NewUserRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
		MessageRepository:  NewMessageRepository(db, log),
		PhotoStorage:       photos,
		db:                 db,
	}

	cache := NewNopPropertyCache()
	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		s.redis = client
		s.SessionStore = NewRedisSessionStore(client, log)
		cache = NewRedisPropertyCache(client, cfg.Redis.CacheTTL, log)
	} else {
		s.SessionStore = NewSQLSessionStore(db, log)
	}
	s.PropertyStorage = NewPropertyStorage(NewPropertyRepository(db, log), cache, log)

	return s, nil
}

// UsesSQLSessions reports whether sessions are kept in the database and
// therefore need periodic sweeping.
func (s *Storages) UsesSQLSessions() bool {
	return s.redis == nil
}

// Close releases the database and redis connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = s.redis.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil {
			err = dbErr
		}
	}

	return err
}
