package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleCorpus() Corpus {
	now := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)
	return Corpus{
		Now: now,
		Fixtures: []Fixture{
			{Expression: "*/15 * * * *", Expected: time.Date(2024, 1, 1, 0, 15, 0, 0, time.UTC)},
			{Expression: "30 5 * * 1", Expected: time.Date(2024, 1, 1, 5, 30, 0, 0, time.UTC)},
			{Expression: "*/15 * * * *", Expected: time.Date(2024, 1, 1, 0, 15, 0, 0, time.UTC)},
		},
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"2024-01-01 00:00:00", "1999-12-31 23:59:59", "2030-02-28 12:07:01"} {
		ts, err := ParseTime(s)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", s, err)
		}
		if got := FormatTime(ts); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	c := sampleCorpus()
	if got := string(c.MarshalNow()); got != "2024-01-01 00:05:00" {
		t.Errorf("MarshalNow() = %q", got)
	}

	want := "*/15 * * * *|2024-01-01 00:15:00\n" +
		"30 5 * * 1|2024-01-01 05:30:00\n" +
		"*/15 * * * *|2024-01-01 00:15:00\n"
	if got := string(c.MarshalCases()); got != want {
		t.Errorf("MarshalCases() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "testdata")
	c := sampleCorpus()

	w := NewWriter(dir, nil)
	if err := w.Write(context.Background(), c); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(dir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !got.Now.Equal(c.Now) {
		t.Errorf("Now = %s, want %s", got.Now, c.Now)
	}
	if len(got.Fixtures) != len(c.Fixtures) {
		t.Fatalf("got %d fixtures, want %d", len(got.Fixtures), len(c.Fixtures))
	}
	for i := range c.Fixtures {
		if got.Fixtures[i].Expression != c.Fixtures[i].Expression ||
			!got.Fixtures[i].Expected.Equal(c.Fixtures[i].Expected) {
			t.Errorf("fixture %d = %+v, want %+v", i, got.Fixtures[i], c.Fixtures[i])
		}
	}
	if Digest(got) != Digest(c) {
		t.Error("digest changed across write/read")
	}
}

func TestWrite_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWriter(dir, nil)

	if err := w.Write(context.Background(), sampleCorpus()); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	small := Corpus{Now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	if err := w.Write(context.Background(), small); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, CasesFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 0 {
		t.Errorf("cases not overwritten: %q", raw)
	}
	now, err := os.ReadFile(filepath.Join(dir, NowFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(now) != "2025-06-01 00:00:00" {
		t.Errorf("now = %q", now)
	}
}

func TestWrite_UnwritableDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := NewWriter(filepath.Join(file, "sub"), nil).Write(context.Background(), sampleCorpus())
	if err == nil {
		t.Fatal("expected error writing under a regular file")
	}
}

func TestParseCases_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"no separator", "* * * * *\n", "line 1"},
		{"bad time", "* * * * *|2024-01-01\n", "line 1"},
		{"empty expression", "ok * * * *|2024-01-01 00:00:00\n|2024-01-01 00:00:00\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCases(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error should mention %s: %v", tt.line, err)
			}
		})
	}
}

func TestParseCases_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	got, err := ParseCases(strings.NewReader("\n0 * * * *|2024-01-01 01:00:00\r\n\n"))
	if err != nil {
		t.Fatalf("ParseCases: %v", err)
	}
	if len(got) != 1 || got[0].Expression != "0 * * * *" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseNow(t *testing.T) {
	t.Parallel()

	if _, err := ParseNow([]byte("2024-01-01 00:00:00\n")); err != nil {
		t.Errorf("trailing newline should be accepted: %v", err)
	}
	if _, err := ParseNow([]byte("2024-01-01T00:00:00Z")); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestDigest(t *testing.T) {
	t.Parallel()

	a := sampleCorpus()
	b := sampleCorpus()
	if Digest(a) != Digest(b) {
		t.Fatal("equal corpora should share a digest")
	}
	if len(Digest(a)) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(Digest(a)))
	}

	b.Fixtures[1].Expected = b.Fixtures[1].Expected.Add(time.Minute)
	if Digest(a) == Digest(b) {
		t.Error("different corpora should not share a digest")
	}
}
