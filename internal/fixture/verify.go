package fixture

import (
	"time"

	"github.com/flemzord/cronfixture/internal/corpus"
	"github.com/flemzord/cronfixture/internal/cron"
)

// Mismatch is a fixture whose recorded expectation the oracle no longer
// reproduces.
type Mismatch struct {
	Index   int
	Fixture corpus.Fixture
	Got     time.Time
	Reason  cron.RejectReason
}

// Verify re-queries oracle for every fixture of c against c.Now and
// returns the fixtures whose answer differs from the recorded one.
func Verify(oracle cron.Oracle, c corpus.Corpus) []Mismatch {
	var out []Mismatch
	for i, f := range c.Fixtures {
		res := oracle.Next(f.Expression, c.Now)
		if res.OK() && res.Next.Equal(f.Expected) {
			continue
		}
		out = append(out, Mismatch{
			Index:   i,
			Fixture: f,
			Got:     res.Next,
			Reason:  res.Reason,
		})
	}
	return out
}
