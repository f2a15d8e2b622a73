package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/flemzord/cronfixture/internal/corpus"

// Writer persists a corpus into a directory, overwriting previous artifacts.
type Writer struct {
	dir    string
	logger *slog.Logger
	tracer trace.Tracer
}

// NewWriter creates a writer targeting dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		dir:    dir,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write renders both artifacts in memory, then overwrites the now and cases
// files. The directory is created if missing.
func (w *Writer) Write(ctx context.Context, c Corpus) (err error) {
	_, span := w.tracer.Start(ctx, "cronfixture.corpus.write",
		trace.WithAttributes(
			attribute.String("cronfixture.output_dir", w.dir),
			attribute.Int("cronfixture.fixtures", len(c.Fixtures)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	now := c.MarshalNow()
	cases := c.MarshalCases()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("corpus: create directory %s: %w", w.dir, err)
	}

	nowPath := filepath.Join(w.dir, NowFile)
	if err := os.WriteFile(nowPath, now, 0o644); err != nil {
		return fmt.Errorf("corpus: write %s: %w", nowPath, err)
	}

	casesPath := filepath.Join(w.dir, CasesFile)
	if err := os.WriteFile(casesPath, cases, 0o644); err != nil {
		return fmt.Errorf("corpus: write %s: %w", casesPath, err)
	}

	w.logger.Debug("corpus: artifacts written",
		"dir", w.dir,
		"fixtures", len(c.Fixtures),
		"bytes", len(now)+len(cases),
	)
	return nil
}
