package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestSetupTracing_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := SetupTracing(context.Background(), TracingOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "cronfixture_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Add(3)

	path := filepath.Join(t.TempDir(), "textfile", "cronfixture.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "cronfixture_test_total 3") {
		t.Errorf("unexpected textfile contents:\n%s", raw)
	}
}
