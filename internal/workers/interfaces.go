// Package workers runs the background jobs of the API server next to the
// HTTP transport.
//
// A Worker blocks in Run until its context is cancelled; Workers runs a set
// of them concurrently and waits for all to stop.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return once ctx is done. A non-nil error stops every other
// worker started by the same [Workers].
type Worker interface {
	Run(ctx context.Context) error
}
