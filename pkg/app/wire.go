package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/flemzord/cronfixture/internal/archive"
	"github.com/flemzord/cronfixture/internal/config"
)

// pcgStream is the second PCG word; runs are identified by the first.
const pcgStream = 0x6a09e667f3bcc909

// loadConfig resolves, loads and validates the configuration.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.FindPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// seedFor returns the configured seed, or one derived from the clock.
func seedFor(cfg *config.Config, clock func() time.Time) uint64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return uint64(clock().UnixNano())
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// archiveRun records rep in the SQLite archive configured in cfg.
func archiveRun(ctx context.Context, cfg *config.Config, rep *Report) (string, error) {
	store, err := archive.Open(ctx, cfg.Archive.Path)
	if err != nil {
		return "", err
	}
	defer func() { _ = store.Close() }()

	return store.Record(ctx, archive.Run{
		Reference: rep.Corpus.Now,
		Seed:      rep.Seed,
		Digest:    rep.Digest,
		Target:    cfg.Target,
		Attempts:  rep.Stats.Attempts,
		Rejected:  rep.Stats.RejectedByName(),
		Fixtures:  rep.Corpus.Fixtures,
	})
}

// ErrArchiveDisabled is returned by History when no archive is configured.
var ErrArchiveDisabled = errors.New("archive disabled: set archive.path")

// History returns up to limit archived runs, newest first.
func History(ctx context.Context, params Params, limit int) ([]archive.Run, error) {
	cfg, err := loadConfig(params.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Archive.Path == "" {
		return nil, ErrArchiveDisabled
	}

	store, err := archive.Open(ctx, cfg.Archive.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return store.Runs(ctx, limit)
}
