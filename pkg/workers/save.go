package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/log"
)

// Checkpointer is a session that can be regenerated and saved on demand.
type Checkpointer interface {
	Checkpoint(ctx context.Context)
}

type CheckpointWorker struct {
	session  Checkpointer
	interval time.Duration
}

type NewCheckpointWorkerOptions struct {
	Session  Checkpointer
	Interval time.Duration
}

// NewCheckpointWorker creates a new CheckpointWorker.
// The worker periodically runs the session's time-driven passes so
// regenerated charges, restored nodes and expired traps are saved and
// pushed to subscribers without waiting for the next request.
func NewCheckpointWorker(opts NewCheckpointWorkerOptions) *CheckpointWorker {
	return &CheckpointWorker{
		session:  opts.Session,
		interval: opts.Interval,
	}
}

func (w *CheckpointWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Trace("Checkpointing session")
			w.session.Checkpoint(ctx)
		}
	}
}
