package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

// sqlSessionStore keeps sessions in the "sessions" table. Expired rows are
// invisible to Get and are purged by DeleteExpired, which the session sweeper
// worker calls periodically.
type sqlSessionStore struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewSQLSessionStore(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating sql session store")
	return &sqlSessionStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqlSessionStore) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.buildInsertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.Save").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqlSessionStore) Get(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.buildGetSessionQuery(sessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session models.Session
		role    string
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&session.ID, &session.UserID, &session.User.Email, &session.User.FirstName, &session.User.LastName,
		&session.User.Phone, &role, &session.CreatedAt, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.Get").Msg("error scanning session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	session.User.ID = session.UserID
	session.User.Role = models.Role(role)
	session.CreatedAt = session.CreatedAt.UTC()
	session.ExpiresAt = session.ExpiresAt.UTC()

	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *sqlSessionStore) Delete(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.buildDeleteSessionQuery(sessionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqlSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.buildDeleteExpiredSessionsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlSessionStore.DeleteExpired").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}
