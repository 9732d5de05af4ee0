package workers

import (
	"context"
	"time"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
)

// SessionSweeper periodically deletes expired sessions from a SQL session
// store. Lookups already ignore expired rows; sweeping only keeps the
// table small.
type SessionSweeper struct {
	sessions store.SessionStore
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(sessions store.SessionStore, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps on every tick until ctx is done. Failed sweeps are logged and
// retried on the next tick.
func (s *SessionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("error deleting expired sessions")
		return
	}
	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("expired sessions deleted")
	}
}
