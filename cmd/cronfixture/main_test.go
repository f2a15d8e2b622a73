package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "testdata")
	body := "version: \"1\"\ntarget: 20\nseed: 1\noutput_dir: " + out + "\narchive:\n  path: " + filepath.Join(dir, "runs.db") + "\n"
	path := filepath.Join(dir, "cronfixture.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path, out
}

func TestGenerateThenVerify(t *testing.T) {
	cfgPath, outDir := writeConfig(t)

	out, err := execute(t, "--config", cfgPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "wrote 20 fixtures") {
		t.Errorf("unexpected generate output:\n%s", out)
	}
	for _, name := range []string{"now", "cases"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s artifact: %v", name, err)
		}
	}

	out, err = execute(t, "verify", "-c", cfgPath)
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "20 fixtures") || !strings.Contains(out, "match") {
		t.Errorf("unexpected verify output:\n%s", out)
	}

	out, err = execute(t, "history", "-c", cfgPath, "-n", "5")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Errorf("want one archived run:\n%s", out)
	}
}

func TestVerify_DriftFails(t *testing.T) {
	cfgPath, outDir := writeConfig(t)
	if _, err := execute(t, "-c", cfgPath); err != nil {
		t.Fatal(err)
	}

	cases := filepath.Join(outDir, "cases")
	if err := os.WriteFile(cases, []byte("0 0 * * *|2000-01-01 00:00:00\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "verify", "-c", cfgPath)
	if err == nil {
		t.Fatal("expected verify to fail on drift")
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "0 0 * * *") {
		t.Errorf("unexpected verify output:\n%s", out)
	}
}

func TestConfigCheck(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, err := execute(t, "config", "check", cfgPath)
	if err != nil {
		t.Fatalf("config check: %v", err)
	}
	if !strings.Contains(out, "target      20") {
		t.Errorf("unexpected output:\n%s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: \"1\"\nmax_length: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "config", "check", bad); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "cronfixture dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestRejectsPositionalArgs(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}
