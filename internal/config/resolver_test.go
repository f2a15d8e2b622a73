package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindPath_WorkingDirFirst(t *testing.T) {
	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	for _, p := range []string{FileName, filepath.Join(xdg, "cronfixture", FileName)} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("version: \"1\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	if got := FindPath(); got != FileName {
		t.Errorf("FindPath() = %q, want %q", got, FileName)
	}
}

func TestFindPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := filepath.Join(xdg, "cronfixture", FileName)
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte("version: \"1\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := FindPath(); got != want {
		t.Errorf("FindPath() = %q, want %q", got, want)
	}
}

func TestFindPath_None(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "empty"))

	if got := FindPath(); got != "" {
		t.Errorf("FindPath() = %q, want empty", got)
	}
}
