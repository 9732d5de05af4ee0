package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

const sessionKeyPrefix = "session:"

// redisSessionStore keeps each session as a JSON value under
// "session:<id>" with a TTL equal to its remaining lifetime, so redis
// expires it on its own.
type redisSessionStore struct {
	logger *logger.Logger
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisSessionStore(client redis.Cmdable, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *redisSessionStore) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = s.client.Set(ctx, sessionKey(session.ID), value, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStore.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	value, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*redisSessionStore.Get").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal(value, &session); err != nil {
		log.Err(err).Str("func", "*redisSessionStore.Get").Msg("error decoding session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpired is a no-op: keys carry their own TTL.
func (s *redisSessionStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
