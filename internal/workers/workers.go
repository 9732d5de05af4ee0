package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers registers the jobs the configured storages need. Only SQL
// session stores need sweeping; redis expires sessions itself.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if storages.UsesSQLSessions() && cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeper(storages.SessionStore, cfg.SessionSweepInterval, logger))
	}

	logger.Info().Int("workers", len(w.workers)).Msg("background workers created")
	return w
}

// Run starts every worker and blocks until all of them return. The first
// error cancels the rest and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}
