package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format, for a node-exporter textfile collector. The parent directory
// is created if missing.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("telemetry: create directory %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("telemetry: write metrics %s: %w", path, err)
	}
	return nil
}
