// Package corpus reads and writes the regression artifacts: a "now" file
// holding the reference instant and a "cases" file holding one
// "<expression>|<expected>" record per line.
package corpus

import (
	"bytes"
	"encoding/hex"
	"errors"
	"time"

	"github.com/zeebo/blake3"
)

// TimeLayout is the timestamp format used by both artifacts.
const TimeLayout = "2006-01-02 15:04:05"

// Artifact file names inside the output directory.
const (
	NowFile   = "now"
	CasesFile = "cases"
)

// ErrMalformed is returned when an artifact cannot be parsed.
var ErrMalformed = errors.New("malformed corpus")

// Fixture pairs an expression with its expected next activation.
type Fixture struct {
	Expression string
	Expected   time.Time
}

// Corpus is one generated regression set. Every fixture's Expected is
// computed relative to Now.
type Corpus struct {
	Now      time.Time
	Fixtures []Fixture
}

// FormatTime renders t with TimeLayout.
func FormatTime(t time.Time) string { return t.Format(TimeLayout) }

// ParseTime parses a TimeLayout timestamp as UTC wall time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.UTC)
}

// MarshalNow renders the now artifact. It has no trailing newline.
func (c Corpus) MarshalNow() []byte {
	return []byte(FormatTime(c.Now))
}

// MarshalCases renders the cases artifact in fixture order.
func (c Corpus) MarshalCases() []byte {
	var buf bytes.Buffer
	buf.Grow(len(c.Fixtures) * 48)
	for _, f := range c.Fixtures {
		buf.WriteString(f.Expression)
		buf.WriteByte('|')
		buf.WriteString(FormatTime(f.Expected))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Digest returns a BLAKE3 hex digest of the rendered artifacts. Two corpora
// with the same digest produce byte-identical files.
func Digest(c Corpus) string {
	h := blake3.New()
	_, _ = h.Write(c.MarshalNow())
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(c.MarshalCases())
	return hex.EncodeToString(h.Sum(nil))
}
