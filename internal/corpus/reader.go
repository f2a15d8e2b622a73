package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Read loads the now and cases artifacts from dir.
func Read(dir string) (Corpus, error) {
	nowPath := filepath.Join(dir, NowFile)
	raw, err := os.ReadFile(nowPath)
	if err != nil {
		return Corpus{}, fmt.Errorf("corpus: reading %s: %w", nowPath, err)
	}
	now, err := ParseNow(raw)
	if err != nil {
		return Corpus{}, err
	}

	casesPath := filepath.Join(dir, CasesFile)
	f, err := os.Open(casesPath)
	if err != nil {
		return Corpus{}, fmt.Errorf("corpus: reading %s: %w", casesPath, err)
	}
	defer func() { _ = f.Close() }()

	fixtures, err := ParseCases(f)
	if err != nil {
		return Corpus{}, err
	}
	return Corpus{Now: now, Fixtures: fixtures}, nil
}

// ParseNow parses the now artifact. Surrounding whitespace is ignored.
func ParseNow(raw []byte) (time.Time, error) {
	t, err := ParseTime(string(bytes.TrimSpace(raw)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: now: %w", ErrMalformed, err)
	}
	return t, nil
}

// ParseCases parses cases records, one per line. Blank lines are skipped.
func ParseCases(r io.Reader) ([]Fixture, error) {
	var fixtures []Fixture
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		expr, ts, ok := strings.Cut(text, "|")
		if !ok {
			return nil, fmt.Errorf("%w: cases line %d: missing separator", ErrMalformed, line)
		}
		if strings.TrimSpace(expr) == "" {
			return nil, fmt.Errorf("%w: cases line %d: empty expression", ErrMalformed, line)
		}
		expected, err := ParseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("%w: cases line %d: %w", ErrMalformed, line, err)
		}
		fixtures = append(fixtures, Fixture{Expression: expr, Expected: expected})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: scanning cases: %w", err)
	}
	return fixtures, nil
}
