package cron

import (
	"math/rand/v2"
	"testing"
	"time"
)

func FuzzRobfigOracle(f *testing.F) {
	f.Add("*/5 * * * *", int64(0))
	f.Add("0 0 1 1 *", int64(1704067200))
	f.Add("30 5 * * 1", int64(1704067200))
	f.Add("5-40/10 3/4,20 1,15,30 */2 0-6", int64(1717171717))
	f.Add("invalid", int64(0))
	f.Add("", int64(0))
	f.Add("60 * * * *", int64(0))
	f.Add("0 25 * * *", int64(0))

	o := NewRobfigOracle()
	f.Fuzz(func(t *testing.T, expr string, unix int64) {
		now := time.Unix(unix%(1<<34), 0).UTC()
		res := o.Next(expr, now)
		if res.OK() && !res.Next.After(now) {
			t.Fatalf("Next(%q, %s) = %s, not after now", expr, now, res.Next)
		}
		if !res.OK() && res.Err == nil {
			t.Fatalf("rejection %q without error", res.Reason)
		}
	})
}

func FuzzAssembler(f *testing.F) {
	f.Add(uint64(1), uint64(2))
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(1<<63), uint64(42))

	o := NewRobfigOracle()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.Fuzz(func(t *testing.T, s1, s2 uint64) {
		a := NewAssembler(rand.New(rand.NewPCG(s1, s2)))
		e, err := a.Assemble()
		if err != nil {
			return
		}
		// Must not panic; rejections are expected.
		_ = o.Next(e.Text, now)
	})
}
