package hooks

import (
	"time"

	"github.com/google/uuid"
)

// Outcome classifies one entry's result within a run.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailure  Outcome = "failure"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeTimedOut Outcome = "timed_out"
)

// EntryResult is one entry's slot in the run report, in execution order.
type EntryResult struct {
	Name     string
	Outcome  Outcome
	FailOK   bool
	Duration time.Duration
	Output   string // combined stdout/stderr
	Err      error
}

// Hard reports whether this result counts toward aborting the run. A
// fail_ok failure is recorded but never hard; a timeout is always hard
// because a hang must not be silently swallowed.
func (r EntryResult) Hard() bool {
	switch r.Outcome {
	case OutcomeTimedOut:
		return true
	case OutcomeFailure:
		return !r.FailOK
	}
	return false
}

// RunReport is the structured result of running one hook point. Run never
// raises for execution failures; callers decide severity from the report.
type RunReport struct {
	ID      uuid.UUID
	Point   Point
	Started time.Time
	Elapsed time.Duration
	Results []EntryResult
	Aborted bool
}

// Failed reports whether any entry produced a hard failure.
func (r *RunReport) Failed() bool {
	return len(r.HardFailures()) > 0
}

// HardFailures returns the results that count as hard failures.
func (r *RunReport) HardFailures() []EntryResult {
	var out []EntryResult
	for _, res := range r.Results {
		if res.Hard() {
			out = append(out, res)
		}
	}
	return out
}

// Warnings returns fail_ok failures, recorded but non-fatal.
func (r *RunReport) Warnings() []EntryResult {
	var out []EntryResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailure && res.FailOK {
			out = append(out, res)
		}
	}
	return out
}
