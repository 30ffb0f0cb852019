package hooks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/blackdot-sh/blackdot/internal/config"
)

// Options controls one hook-point run. Zero-value Timeout means "no
// deadline"; callers normally start from OptionsFromSettings.
type Options struct {
	FailFast bool
	Verbose  bool
	DryRun   bool
	Timeout  time.Duration
}

// OptionsFromSettings converts the hook document's defaults block into run
// options.
func OptionsFromSettings(s config.Settings) Options {
	s = s.Normalize()
	return Options{
		FailFast: s.FailFast,
		Verbose:  s.Verbose,
		Timeout:  time.Duration(s.Timeout) * time.Second,
	}
}

// Executor runs resolved hook entries strictly sequentially and in sorted
// order; later hooks commonly depend on side effects of earlier ones, so
// concurrency within a point is never permitted. Runs for different points
// may proceed concurrently.
type Executor struct {
	registry *Registry
	logger   *slog.Logger
}

// NewExecutor creates an executor over a hook registry.
func NewExecutor(registry *Registry, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{registry: registry, logger: logger}
}

// Run executes all resolved entries for a point and returns a structured
// report. The only error it returns is InvalidHookPointError; execution
// failures are captured inside the report, never raised. Cancelling ctx
// kills the in-flight entry and marks the remainder skipped.
func (x *Executor) Run(ctx context.Context, point Point, opts Options) (*RunReport, error) {
	entries, err := x.registry.Resolve(point)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		ID:      uuid.New(),
		Point:   point,
		Started: time.Now(),
		Results: make([]EntryResult, 0, len(entries)),
	}
	defer func() { report.Elapsed = time.Since(report.Started) }()

	if opts.DryRun {
		// A reliable preview: same order as a real run, nothing executed.
		for _, e := range entries {
			report.Results = append(report.Results, EntryResult{
				Name:    e.Name,
				Outcome: OutcomeSkipped,
				FailOK:  e.FailOK,
			})
		}
		return report, nil
	}

	skipping := false
	for _, e := range entries {
		if skipping || ctx.Err() != nil {
			report.Results = append(report.Results, EntryResult{
				Name:    e.Name,
				Outcome: OutcomeSkipped,
				FailOK:  e.FailOK,
			})
			continue
		}

		res := x.runEntry(ctx, e, opts)
		report.Results = append(report.Results, res)
		x.logger.Debug("hook entry finished",
			"run", report.ID, "point", point, "entry", e.Name,
			"outcome", res.Outcome, "duration", res.Duration)

		if ctx.Err() != nil {
			// External cancellation: stop here, remaining entries skipped.
			skipping = true
			report.Aborted = true
			continue
		}
		if res.Hard() && opts.FailFast {
			skipping = true
			report.Aborted = true
		}
	}
	return report, nil
}

// runEntry executes one entry under its deadline and classifies the result.
func (x *Executor) runEntry(ctx context.Context, e Entry, opts Options) EntryResult {
	timeout := opts.Timeout
	if e.Timeout > 0 {
		timeout = e.Timeout
	}
	entryCtx := ctx
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		entryCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	start := time.Now()
	output, err := x.invoke(entryCtx, e, opts.Verbose)
	res := EntryResult{
		Name:     e.Name,
		FailOK:   e.FailOK,
		Duration: time.Since(start),
		Output:   output,
		Err:      err,
	}

	switch {
	case err == nil:
		res.Outcome = OutcomeSuccess
	case errors.Is(entryCtx.Err(), context.DeadlineExceeded):
		// A hang is never acceptable to silently swallow, fail_ok or not.
		res.Outcome = OutcomeTimedOut
	default:
		res.Outcome = OutcomeFailure
	}
	return res
}

// invoke dispatches on the entry's action. Exactly one of Path, Run, or
// Callback is set.
func (x *Executor) invoke(ctx context.Context, e Entry, verbose bool) (string, error) {
	if e.Callback != nil {
		return "", x.invokeCallback(ctx, e.Callback)
	}

	var cmd *exec.Cmd
	switch {
	case e.Path != "":
		cmd = exec.CommandContext(ctx, e.Path) // #nosec G204 - user-managed hook files are intentional
	case e.Run != "":
		cmd = exec.CommandContext(ctx, "bash", "-c", e.Run) // #nosec G204 - user-configured command execution is intentional
	default:
		return "", errors.New("hook entry has no action")
	}

	var buf bytes.Buffer
	var stdout, stderr io.Writer = &buf, &buf
	if verbose {
		stdout = io.MultiWriter(&buf, os.Stdout)
		stderr = io.MultiWriter(&buf, os.Stderr)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Kill outlives the deadline; WaitDelay bounds cleanup when the child
	// holds its pipes open after the kill.
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()
	return buf.String(), err
}

// invokeCallback runs an in-process callback, abandoning the wait when the
// deadline passes. The callback receives ctx and is expected to honor it;
// the result channel is buffered so a late finisher can still exit.
func (x *Executor) invokeCallback(ctx context.Context, fn Callback) error {
	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunPoints runs several distinct points concurrently, one flow per point.
// Reports come back in input order. Used by callers like doctor that fire
// unrelated points at once; a single point's entries still run in order.
func (x *Executor) RunPoints(ctx context.Context, points []Point, opts Options) ([]*RunReport, error) {
	reports := make([]*RunReport, len(points))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range points {
		g.Go(func() error {
			report, err := x.Run(gctx, p, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
