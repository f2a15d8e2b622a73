// Package cron assembles random five-field cron expressions and evaluates
// them against a reference cron implementation (the oracle).
package cron

import "time"

// RejectReason explains why a candidate expression did not become a fixture.
type RejectReason string

// Rejection reasons. ReasonNone marks an accepted candidate.
const (
	ReasonNone         RejectReason = ""
	ReasonGrammar      RejectReason = "grammar"       // a field draw had no admissible value
	ReasonTooLong      RejectReason = "too_long"      // serialized expression exceeds the length limit
	ReasonParse        RejectReason = "parse"         // the oracle's grammar rejects the expression
	ReasonNoOccurrence RejectReason = "no_occurrence" // the oracle finds no future activation
	ReasonPanic        RejectReason = "panic"         // the oracle panicked
)

// Reasons lists every non-empty rejection reason.
var Reasons = [...]RejectReason{ReasonGrammar, ReasonTooLong, ReasonParse, ReasonNoOccurrence, ReasonPanic}

// Result is the outcome of one oracle query.
type Result struct {
	// Next is the first activation strictly after the query instant, in UTC.
	// Zero unless OK reports true.
	Next time.Time

	// Reason is ReasonNone on success.
	Reason RejectReason

	// Err carries the oracle's own error, if any.
	Err error
}

// OK reports whether the oracle produced an activation time.
func (r Result) OK() bool { return r.Reason == ReasonNone }

// Oracle computes the expected next activation of a cron expression.
type Oracle interface {
	// Next returns the first activation of expr strictly after now,
	// interpreting the expression in UTC. Implementations never panic.
	Next(expr string, now time.Time) Result
}
