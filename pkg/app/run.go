// Package app provides the shared entry points behind the cronfixture CLI.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flemzord/cronfixture/internal/corpus"
	"github.com/flemzord/cronfixture/internal/cron"
	"github.com/flemzord/cronfixture/internal/fixture"
	"github.com/flemzord/cronfixture/internal/telemetry"
)

const tracerName = "github.com/flemzord/cronfixture/pkg/app"

// Params configures one invocation.
type Params struct {
	// ConfigPath is an explicit path to the YAML configuration file.
	// If empty, config.FindPath is used; with no file, defaults apply.
	ConfigPath string

	// Version, Commit, and Date are injected at build time via ldflags.
	Version string
	Commit  string
	Date    string

	// Clock supplies the reference instant. Defaults to time.Now.
	Clock func() time.Time

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer
}

func (p Params) clock() func() time.Time {
	if p.Clock != nil {
		return p.Clock
	}
	return time.Now
}

func (p Params) logOutput() io.Writer {
	if p.LogOutput != nil {
		return p.LogOutput
	}
	return os.Stderr
}

// Report describes a generated corpus.
type Report struct {
	Corpus    corpus.Corpus
	Stats     fixture.Stats
	Seed      uint64
	Digest    string
	OutputDir string

	// RunID is set when the run was archived.
	RunID string
}

// Generate builds one corpus and writes its artifacts to the configured
// output directory. When configured, the run is also archived and the
// pipeline metrics are exported to a textfile.
func Generate(ctx context.Context, params Params) (*Report, error) {
	cfg, err := loadConfig(params.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, params.logOutput())
	if err != nil {
		return nil, err
	}

	shutdown, err := telemetry.SetupTracing(ctx, telemetry.TracingOptions{
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	clock := params.clock()
	seed := seedFor(cfg, clock)
	logger.Info("generating corpus",
		"version", params.Version,
		"target", cfg.Target,
		"seed", seed,
		"output_dir", cfg.OutputDir,
	)

	reg := prometheus.NewRegistry()
	pipeline := fixture.New(
		cron.NewAssembler(newRand(seed)),
		cron.NewRobfigOracle(),
		fixture.WithClock(clock),
		fixture.WithMaxLength(cfg.MaxLength),
		fixture.WithMaxAttempts(cfg.MaxAttempts),
		fixture.WithLogger(logger.With("component", "fixture")),
		fixture.WithMetrics(fixture.NewMetrics(reg)),
	)

	c, stats, err := pipeline.BuildCorpus(ctx, cfg.Target)
	if err != nil {
		return nil, err
	}

	if err := corpus.NewWriter(cfg.OutputDir, logger.With("component", "corpus")).Write(ctx, c); err != nil {
		return nil, err
	}

	rep := &Report{
		Corpus:    c,
		Stats:     stats,
		Seed:      seed,
		Digest:    corpus.Digest(c),
		OutputDir: cfg.OutputDir,
	}

	if cfg.Archive.Path != "" {
		if rep.RunID, err = archiveRun(ctx, cfg, rep); err != nil {
			return nil, err
		}
		logger.Info("run archived", "run_id", rep.RunID, "archive", cfg.Archive.Path)
	}

	if cfg.Metrics.Textfile != "" {
		if err := telemetry.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return nil, err
		}
	}

	logger.Info("corpus generated",
		"fixtures", len(c.Fixtures),
		"attempts", stats.Attempts,
		"acceptance_rate", fmt.Sprintf("%.3f", stats.AcceptanceRate()),
		"digest", rep.Digest,
	)
	return rep, nil
}

// VerifyReport describes an oracle re-check of a persisted corpus.
type VerifyReport struct {
	Dir        string
	Now        time.Time
	Checked    int
	Mismatches []fixture.Mismatch
}

// OK reports whether every fixture was reproduced.
func (r *VerifyReport) OK() bool { return len(r.Mismatches) == 0 }

// Verify reads the corpus from the configured output directory and
// re-queries the oracle for every fixture.
func Verify(ctx context.Context, params Params) (*VerifyReport, error) {
	cfg, err := loadConfig(params.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, params.logOutput())
	if err != nil {
		return nil, err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "cronfixture.corpus.verify",
		trace.WithAttributes(attribute.String("cronfixture.output_dir", cfg.OutputDir)),
	)
	defer span.End()

	c, err := corpus.Read(cfg.OutputDir)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	rep := &VerifyReport{
		Dir:        cfg.OutputDir,
		Now:        c.Now,
		Checked:    len(c.Fixtures),
		Mismatches: fixture.Verify(cron.NewRobfigOracle(), c),
	}
	span.SetAttributes(
		attribute.Int("cronfixture.checked", rep.Checked),
		attribute.Int("cronfixture.mismatches", len(rep.Mismatches)),
	)

	logger.Info("corpus verified",
		"dir", rep.Dir,
		"checked", rep.Checked,
		"mismatches", len(rep.Mismatches),
	)
	return rep, nil
}
