package strategy

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Runner invokes the orchestrator on a fixed cadence. Each cycle runs to
// completion before the next begins; cancellation is cooperative and
// observed only between cycles, so a cycle already inside a blocking
// gateway call finishes before the loop exits.
type Runner struct {
	orch     *Orchestrator
	interval time.Duration
	log      zerolog.Logger
}

func NewRunner(orch *Orchestrator, interval time.Duration, log zerolog.Logger) *Runner {
	return &Runner{orch: orch, interval: interval, log: log}
}

// Run polls until ctx is cancelled or a cycle reports a loop-terminating
// condition. Recoverable rejects do not stop the loop; fatal gateway
// outcomes and transport failures do, and are returned to the caller.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.orch.RunCycle(ctx); err != nil {
			r.log.Error().Err(err).Msg("stopping cycle loop")
			return err
		}

		select {
		case <-ctx.Done():
			r.log.Info().Msg("cycle loop cancelled")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
