// Package fixture turns random cron expressions into regression fixtures
// by filtering candidates and asking an oracle for their next activation.
package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/flemzord/cronfixture/internal/corpus"
	"github.com/flemzord/cronfixture/internal/cron"
)

const (
	tracerName = "github.com/flemzord/cronfixture/internal/fixture"

	// DefaultMaxLength is the longest expression accepted into a corpus.
	DefaultMaxLength = 32

	// DefaultAttemptFactor sizes the attempt budget as target * factor
	// when no explicit budget is configured.
	DefaultAttemptFactor = 1000
)

// Source produces candidate expressions. *cron.Assembler satisfies it.
type Source interface {
	Assemble() (cron.Expression, error)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock sets the clock the reference instant is read from.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) { p.clock = clock }
}

// WithMaxLength sets the longest accepted expression.
func WithMaxLength(n int) Option {
	return func(p *Pipeline) { p.maxLength = n }
}

// WithMaxAttempts sets a hard cap on candidates per build. Zero means
// target * DefaultAttemptFactor.
func WithMaxAttempts(n int) Option {
	return func(p *Pipeline) { p.maxAttempts = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the Prometheus collectors to update.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithTracer sets the tracer used for build spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// Pipeline builds corpora by rejection sampling. It is not safe for
// concurrent use; run one pipeline per goroutine, each with its own Source.
type Pipeline struct {
	source Source
	oracle cron.Oracle

	clock       func() time.Time
	maxLength   int
	maxAttempts int
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
}

// New creates a Pipeline drawing candidates from source and evaluating
// them with oracle.
func New(source Source, oracle cron.Oracle, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:    source,
		oracle:    oracle,
		clock:     time.Now,
		maxLength: DefaultMaxLength,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildCorpus collects exactly target fixtures, all evaluated against one
// reference instant captured at the start of the build. Rejected candidates
// are counted in the returned Stats and otherwise dropped silently.
// It fails with ErrBudgetExhausted when the attempt cap is reached first.
func (p *Pipeline) BuildCorpus(ctx context.Context, target int) (c corpus.Corpus, stats Stats, err error) {
	stats = newStats()
	if target <= 0 {
		return corpus.Corpus{}, stats, fmt.Errorf("fixture: %w, got %d", ErrInvalidTarget, target)
	}

	budget := p.maxAttempts
	if budget <= 0 {
		budget = target * DefaultAttemptFactor
	}

	ctx, span := p.tracer.Start(ctx, "cronfixture.corpus.build",
		trace.WithAttributes(
			attribute.Int("cronfixture.target", target),
			attribute.Int("cronfixture.max_length", p.maxLength),
			attribute.Int("cronfixture.budget", budget),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer func() {
		span.SetAttributes(
			attribute.Int("cronfixture.attempts", stats.Attempts),
			attribute.Int("cronfixture.accepted", stats.Accepted),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	started := time.Now()
	now := p.clock().UTC().Truncate(time.Second)
	c = corpus.Corpus{
		Now:      now,
		Fixtures: make([]corpus.Fixture, 0, target),
	}

	for stats.Accepted < target {
		if stats.Attempts >= budget {
			return corpus.Corpus{}, stats, fmt.Errorf("fixture: %w: %d of %d fixtures after %d attempts",
				ErrBudgetExhausted, stats.Accepted, target, stats.Attempts)
		}
		if err := ctx.Err(); err != nil {
			return corpus.Corpus{}, stats, fmt.Errorf("fixture: build cancelled: %w", err)
		}

		stats.Attempts++
		p.metrics.recordAttempt()

		f, reason := p.try(now)
		if reason != cron.ReasonNone {
			stats.Rejected[reason]++
			p.metrics.recordRejected(reason)
			continue
		}

		c.Fixtures = append(c.Fixtures, f)
		stats.Accepted++
		p.metrics.recordAccepted()
	}

	elapsed := time.Since(started)
	p.metrics.recordDuration(elapsed.Seconds())
	p.logger.Info("fixture: corpus built",
		"fixtures", stats.Accepted,
		"attempts", stats.Attempts,
		"rejected", stats.RejectedTotal(),
		"now", corpus.FormatTime(now),
		"elapsed", elapsed,
	)
	p.logger.Debug("fixture: rejections", "by_reason", stats.RejectedByName())
	return c, stats, nil
}

// try evaluates one candidate.
func (p *Pipeline) try(now time.Time) (corpus.Fixture, cron.RejectReason) {
	e, err := p.source.Assemble()
	if err != nil {
		return corpus.Fixture{}, cron.ReasonGrammar
	}
	if e.Len() > p.maxLength {
		return corpus.Fixture{}, cron.ReasonTooLong
	}

	res := p.oracle.Next(e.Text, now)
	if !res.OK() {
		return corpus.Fixture{}, res.Reason
	}
	return corpus.Fixture{Expression: e.Text, Expected: res.Next}, cron.ReasonNone
}
