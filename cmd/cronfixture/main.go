// Package main is the entry point for the cronfixture CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flemzord/cronfixture/internal/config"
	"github.com/flemzord/cronfixture/pkg/app"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failString("error:"), err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cronfixture",
		Short: "Generate cron expression fixtures checked against a reference parser",
		Long: `cronfixture draws random five-field cron expressions, keeps the ones the
reference parser accepts, and writes them with their next occurrence to
the "now" and "cases" files of the output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := app.Generate(cmd.Context(), params(cmd))
			if err != nil {
				return err
			}
			printGenerated(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	root.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	root.AddCommand(versionCmd(), verifyCmd(), historyCmd(), configCmd())
	return root
}

func params(cmd *cobra.Command) app.Params {
	cfgPath, _ := cmd.Flags().GetString("config")
	return app.Params{
		ConfigPath: cfgPath,
		Version:    version,
		Commit:     commit,
		Date:       date,
		LogOutput:  cmd.ErrOrStderr(),
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cronfixture %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Re-check a written corpus against the reference parser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := app.Verify(cmd.Context(), params(cmd))
			if err != nil {
				return err
			}
			printVerified(cmd.OutOrStdout(), rep)
			if !rep.OK() {
				return fmt.Errorf("%d of %d fixtures drifted", len(rep.Mismatches), rep.Checked)
			}
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := app.History(cmd.Context(), params(cmd), limit)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to list")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <path>",
		Short: "Validate configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	})
	return cmd
}
