// Package config handles YAML configuration loading, environment variable
// expansion and overrides, and validation for cronfixture.
package config

// Defaults applied when neither the file nor the environment set a value.
const (
	DefaultVersion     = "1"
	DefaultTarget      = 1000
	DefaultMaxLength   = 32
	DefaultOutputDir   = "./testdata"
	DefaultLogLevel    = "info"
	DefaultServiceName = "cronfixture"
)

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	// Target is the number of fixtures per corpus.
	Target int `yaml:"target"`

	// MaxLength is the longest expression accepted into a corpus.
	MaxLength int `yaml:"max_length" split_words:"true"`

	// MaxAttempts caps candidates per run. Zero means target * 1000.
	MaxAttempts int `yaml:"max_attempts" split_words:"true"`

	// Seed fixes the random source. Nil draws a seed from the clock.
	Seed *uint64 `yaml:"seed,omitempty"`

	// OutputDir receives the now and cases artifacts.
	OutputDir string `yaml:"output_dir" split_words:"true"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" split_words:"true"`

	Archive ArchiveConfig `yaml:"archive"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ArchiveConfig enables the SQLite run archive.
type ArchiveConfig struct {
	// Path is the database file. Empty disables archiving.
	Path string `yaml:"path"`
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is the .prom file written after each run. Empty disables it.
	Textfile string `yaml:"textfile"`
}

// TracingConfig enables OTLP/HTTP span export.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name" split_words:"true"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Version:   DefaultVersion,
		Target:    DefaultTarget,
		MaxLength: DefaultMaxLength,
		OutputDir: DefaultOutputDir,
		LogLevel:  DefaultLogLevel,
		Tracing: TracingConfig{
			ServiceName: DefaultServiceName,
		},
	}
}
