package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// minExpressionLength is the length of the shortest five-field expression,
// "* * * * *".
const minExpressionLength = 9

// Validate checks the structural validity of a Config and reports every
// problem at once.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != DefaultVersion {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: %q)", cfg.Version, DefaultVersion))
	}

	if cfg.Target <= 0 {
		errs = append(errs, fmt.Errorf("config: target must be positive, got %d", cfg.Target))
	}

	if cfg.MaxLength < minExpressionLength {
		errs = append(errs, fmt.Errorf("config: max_length must be at least %d, got %d", minExpressionLength, cfg.MaxLength))
	}

	if cfg.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("config: max_attempts must be non-negative, got %d", cfg.MaxAttempts))
	} else if cfg.MaxAttempts > 0 && cfg.MaxAttempts < cfg.Target {
		errs = append(errs, fmt.Errorf("config: max_attempts (%d) is below target (%d)", cfg.MaxAttempts, cfg.Target))
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		errs = append(errs, errors.New("config: output_dir is required"))
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if cfg.Tracing.Endpoint != "" && cfg.Tracing.ServiceName == "" {
		errs = append(errs, errors.New("config: tracing.service_name is required when tracing.endpoint is set"))
	}

	return errors.Join(errs...)
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log_level %q", s)
	}
	return l, nil
}
