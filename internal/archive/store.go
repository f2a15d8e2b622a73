package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flemzord/cronfixture/internal/corpus"
)

// createdLayout is fixed-width so created_at sorts lexically.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run ID is unknown.
var ErrRunNotFound = errors.New("run not found")

// Run is one archived corpus build.
type Run struct {
	ID        string
	Reference time.Time
	Seed      uint64
	Digest    string
	Target    int
	Attempts  int
	Rejected  map[string]int
	CreatedAt time.Time

	// Fixtures is only populated by Record callers and Get.
	Fixtures []corpus.Fixture
}

// Record stores run and its fixtures in one transaction. An empty ID is
// replaced by a new UUIDv7. Returns the stored ID.
func (s *Store) Record(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("archive: generate run id: %w", err)
		}
		run.ID = id.String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("archive: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, reference, seed, digest, target, attempts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, corpus.FormatTime(run.Reference), int64(run.Seed), run.Digest,
		run.Target, run.Attempts, run.CreatedAt.UTC().Format(createdLayout),
	)
	if err != nil {
		return "", fmt.Errorf("archive: insert run: %w", err)
	}

	for reason, count := range run.Rejected {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rejections (run_id, reason, count) VALUES (?, ?, ?)`,
			run.ID, reason, count,
		); err != nil {
			return "", fmt.Errorf("archive: insert rejection: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO fixtures (run_id, seq, expression, expected) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("archive: prepare fixtures: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, f := range run.Fixtures {
		if _, err := stmt.ExecContext(ctx, run.ID, i, f.Expression, corpus.FormatTime(f.Expected)); err != nil {
			return "", fmt.Errorf("archive: insert fixture %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("archive: commit: %w", err)
	}
	return run.ID, nil
}

// Runs returns the most recent runs, newest first, without fixtures.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reference, seed, digest, target, attempts, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: iterate runs: %w", err)
	}

	for i := range runs {
		if runs[i].Rejected, err = s.rejections(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// Get returns one run with its fixtures in acceptance order.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, reference, seed, digest, target, attempts, created_at
		FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("archive: %w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	if r.Rejected, err = s.rejections(ctx, id); err != nil {
		return Run{}, err
	}
	if r.Fixtures, err = s.fixtures(ctx, id); err != nil {
		return Run{}, err
	}
	return r, nil
}

func (s *Store) rejections(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT reason, count FROM rejections WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("archive: list rejections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int)
	for rows.Next() {
		var (
			reason string
			count  int
		)
		if err := rows.Scan(&reason, &count); err != nil {
			return nil, fmt.Errorf("archive: scan rejection: %w", err)
		}
		out[reason] = count
	}
	return out, rows.Err()
}

func (s *Store) fixtures(ctx context.Context, runID string) ([]corpus.Fixture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT expression, expected FROM fixtures
		WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("archive: list fixtures: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []corpus.Fixture
	for rows.Next() {
		var expr, expected string
		if err := rows.Scan(&expr, &expected); err != nil {
			return nil, fmt.Errorf("archive: scan fixture: %w", err)
		}
		ts, err := corpus.ParseTime(expected)
		if err != nil {
			return nil, fmt.Errorf("archive: fixture time: %w", err)
		}
		out = append(out, corpus.Fixture{Expression: expr, Expected: ts})
	}
	return out, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		r                    Run
		reference, createdAt string
		seed                 int64
	)
	if err := row.Scan(&r.ID, &reference, &seed, &r.Digest, &r.Target, &r.Attempts, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("archive: scan run: %w", err)
	}

	var err error
	if r.Reference, err = corpus.ParseTime(reference); err != nil {
		return Run{}, fmt.Errorf("archive: run reference: %w", err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Run{}, fmt.Errorf("archive: run created_at: %w", err)
	}
	r.Seed = uint64(seed)
	return r, nil
}
