// Package sim contains the narrated demo simulation: a scripted sequence
// of marketplace scenarios run against the reputation service, with
// status reports written to an injected writer. The core never formats
// output itself; all presentation lives here.
package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/okian/repute/internal/app"
	"github.com/okian/repute/pkg/logger"
)

// Runner executes the demo scenarios against one service instance.
type Runner struct {
	svc *app.Service
	out io.Writer
	log logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Runner writing narration to out.
func New(svc *app.Service, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		svc: svc,
		out: out,
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the complete scripted simulation.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	r.log.Info(ctx, "starting demo simulation",
		logger.String("runID", runID),
		logger.String("startDate", r.svc.CurrentDate(ctx).Format("2006-01-02")),
	)

	for i, sc := range scenarios() {
		fmt.Fprintf(r.out, "\n[Scenario %d] %s\n", i+1, sc.title)
		if err := sc.run(ctx, r); err != nil {
			r.log.Error(ctx, "scenario failed",
				logger.String("runID", runID),
				logger.String("scenario", sc.title),
				logger.Error(err),
			)
			return fmt.Errorf("scenario %d (%s): %w", i+1, sc.title, err)
		}
	}

	fmt.Fprintf(r.out, "\n[Demo] Simulation complete.\n")
	r.log.Info(ctx, "demo simulation finished",
		logger.String("runID", runID),
		logger.Int("participants", r.svc.Count(ctx)),
	)
	return nil
}

// report writes the status block for each named participant.
func (r *Runner) report(ctx context.Context, names ...string) error {
	for _, name := range names {
		st, err := r.svc.Status(ctx, name)
		if err != nil {
			return err
		}
		writeStatus(r.out, st)
	}
	return nil
}
