package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"

	"github.com/flemzord/cronfixture/internal/archive"
	"github.com/flemzord/cronfixture/internal/config"
	"github.com/flemzord/cronfixture/internal/corpus"
	"github.com/flemzord/cronfixture/pkg/app"
)

var (
	okString   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failString = color.New(color.FgRed, color.Bold).SprintFunc()
	dimString  = color.New(color.Faint).SprintFunc()
)

func printGenerated(w io.Writer, rep *app.Report) {
	fmt.Fprintf(w, "%s wrote %d fixtures to %s\n", okString("OK"), len(rep.Corpus.Fixtures), rep.OutputDir)
	fmt.Fprintf(w, "  now       %s\n", corpus.FormatTime(rep.Corpus.Now))
	fmt.Fprintf(w, "  seed      %d\n", rep.Seed)
	fmt.Fprintf(w, "  attempts  %d (acceptance %.1f%%)\n", rep.Stats.Attempts, 100*rep.Stats.AcceptanceRate())
	rejected := rep.Stats.RejectedByName()
	for _, reason := range slices.Sorted(maps.Keys(rejected)) {
		fmt.Fprintf(w, "  %s\n", dimString(fmt.Sprintf("rejected %-14s %d", reason, rejected[reason])))
	}
	fmt.Fprintf(w, "  digest    %s\n", rep.Digest)
	if rep.RunID != "" {
		fmt.Fprintf(w, "  run       %s\n", rep.RunID)
	}
}

func printVerified(w io.Writer, rep *app.VerifyReport) {
	if rep.OK() {
		fmt.Fprintf(w, "%s %d fixtures in %s match\n", okString("OK"), rep.Checked, rep.Dir)
		return
	}
	fmt.Fprintf(w, "%s %d of %d fixtures in %s drifted\n", failString("FAIL"), len(rep.Mismatches), rep.Checked, rep.Dir)
	for _, m := range rep.Mismatches {
		got := "none"
		if m.Reason == "" {
			got = corpus.FormatTime(m.Got)
		} else {
			got += " (" + string(m.Reason) + ")"
		}
		fmt.Fprintf(w, "  #%-4d %-32s want %s got %s\n", m.Index, m.Fixture.Expression, corpus.FormatTime(m.Fixture.Expected), got)
	}
}

func printHistory(w io.Writer, runs []archive.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %s  now=%s target=%d attempts=%d seed=%d %s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			corpus.FormatTime(r.Reference),
			r.Target,
			r.Attempts,
			r.Seed,
			dimString(r.Digest[:min(12, len(r.Digest))]),
		)
	}
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "%s configuration\n", okString("OK"))
	fmt.Fprintf(w, "  target      %d\n", cfg.Target)
	fmt.Fprintf(w, "  max_length  %d\n", cfg.MaxLength)
	fmt.Fprintf(w, "  output_dir  %s\n", cfg.OutputDir)
	if cfg.Seed != nil {
		fmt.Fprintf(w, "  seed        %d\n", *cfg.Seed)
	}
	if cfg.Archive.Path != "" {
		fmt.Fprintf(w, "  archive     %s\n", cfg.Archive.Path)
	}
}
