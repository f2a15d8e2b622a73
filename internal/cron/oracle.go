package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// RobfigOracle evaluates expressions with github.com/robfig/cron/v3 using
// the standard five-field grammar (no seconds, no descriptors).
type RobfigOracle struct {
	parser cron.Parser
}

// Compile-time interface check.
var _ Oracle = (*RobfigOracle)(nil)

// NewRobfigOracle creates an oracle backed by a five-field robfig parser.
func NewRobfigOracle() *RobfigOracle {
	return &RobfigOracle{
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

// Next implements Oracle.
func (o *RobfigOracle) Next(expr string, now time.Time) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Reason: ReasonPanic, Err: fmt.Errorf("cron: oracle panicked on %q: %v", expr, r)}
		}
	}()

	sched, err := o.parser.Parse(expr)
	if err != nil {
		return Result{Reason: ReasonParse, Err: fmt.Errorf("cron: parse %q: %w", expr, err)}
	}

	// A schedule without an explicit zone follows the zone of the instant
	// it is evaluated against, so passing UTC pins the evaluation to UTC.
	next := sched.Next(now.UTC())
	if next.IsZero() {
		return Result{
			Reason: ReasonNoOccurrence,
			Err:    fmt.Errorf("cron: %q has no activation after %s", expr, now.UTC().Format(time.RFC3339)),
		}
	}
	return Result{Next: next.UTC()}
}
