// Package crontest provides test doubles for the cron package.
package crontest

import (
	"sync"
	"time"

	"github.com/flemzord/cronfixture/internal/cron"
)

// MockOracle is a configurable test double for cron.Oracle.
// Without NextFunc it accepts every expression and answers now + 1 minute.
type MockOracle struct {
	NextFunc func(expr string, now time.Time) cron.Result

	mu    sync.Mutex
	calls []string
}

// Compile-time interface check.
var _ cron.Oracle = (*MockOracle)(nil)

// Next implements cron.Oracle and records the queried expression.
func (m *MockOracle) Next(expr string, now time.Time) cron.Result {
	m.mu.Lock()
	m.calls = append(m.calls, expr)
	m.mu.Unlock()

	if m.NextFunc != nil {
		return m.NextFunc(expr, now)
	}
	return cron.Result{Next: now.Add(time.Minute)}
}

// CallCount returns the number of times Next was called.
func (m *MockOracle) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns the queried expressions in call order.
func (m *MockOracle) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Rejecting returns an oracle that rejects every expression with reason.
func Rejecting(reason cron.RejectReason) *MockOracle {
	return &MockOracle{
		NextFunc: func(string, time.Time) cron.Result {
			return cron.Result{Reason: reason}
		},
	}
}

// ScriptedSource replays a fixed list of expressions, cycling when exhausted.
// An entry with a non-nil error is returned as an assembly failure.
type ScriptedSource struct {
	Entries []ScriptEntry

	mu   sync.Mutex
	next int
}

// ScriptEntry is one scripted Assemble outcome.
type ScriptEntry struct {
	Text string
	Err  error
}

// Assemble returns the next scripted expression.
func (s *ScriptedSource) Assemble() (cron.Expression, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.Entries[s.next%len(s.Entries)]
	s.next++
	if e.Err != nil {
		return cron.Expression{}, e.Err
	}
	return cron.Expression{Text: e.Text}, nil
}
