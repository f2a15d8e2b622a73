package fixture

import "github.com/flemzord/cronfixture/internal/cron"

// Stats summarizes one corpus build.
type Stats struct {
	Attempts int
	Accepted int
	Rejected map[cron.RejectReason]int
}

func newStats() Stats {
	return Stats{Rejected: make(map[cron.RejectReason]int, len(cron.Reasons))}
}

// RejectedTotal returns the number of rejected candidates.
func (s Stats) RejectedTotal() int {
	n := 0
	for _, c := range s.Rejected {
		n += c
	}
	return n
}

// AcceptanceRate returns Accepted / Attempts, or 0 before any attempt.
func (s Stats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Attempts)
}

// RejectedByName returns the rejection counts keyed by reason name.
func (s Stats) RejectedByName() map[string]int {
	out := make(map[string]int, len(s.Rejected))
	for r, c := range s.Rejected {
		out[string(r)] = c
	}
	return out
}
