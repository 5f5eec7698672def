package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/store"
)

var errHistoryDisabled = errors.New("history is disabled (db.disabled)")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List generated batches",
	Long: `List recorded batches, newest first. Replay one with

  worksheetz generate <module> --seed <seed> --count <n> --settings '<settings>'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		module, _ := cmd.Flags().GetString("module")
		withSettings, _ := cmd.Flags().GetBool("settings")

		return withStore(cmd, func(repo store.EventRepo) error {
			events, err := repo.QueryGenerations(commandContext(cmd), store.QueryOpts{Limit: limit, Module: module})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No batches recorded.")
				return nil
			}

			t := newTable(out, "Seq", "Time", "Module", "Count", "Failed", "Seed", "Error")
			for _, e := range events {
				t.row(e.Sequence, e.Timestamp, e.Module, e.Count, e.Failed, e.Seed, e.ErrorKind)
				if withSettings && e.Settings != "" {
					t.row("", "", e.Settings)
				}
			}
			return t.flush()
		})
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show batch and failure totals per module",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(repo store.EventRepo) error {
			usage, err := repo.GenerationsByModule(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(usage) == 0 {
				fmt.Fprintln(out, "No batches recorded.")
				return nil
			}

			t := newTable(out, "Module", "Batches", "Problems", "Failed", "Success")
			var sum store.ModuleUsage
			for _, u := range usage {
				t.row(u.Module, u.Batches, u.Problems, u.Failed, successRate(u.Problems, u.Failed))
				sum.Batches += u.Batches
				sum.Problems += u.Problems
				sum.Failed += u.Failed
			}
			t.rule()
			t.row("TOTAL", sum.Batches, sum.Problems, sum.Failed, successRate(sum.Problems, sum.Failed))
			return t.flush()
		})
	},
}

func successRate(total, failed int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(total-failed)/float64(total)*100)
}

// withStore opens the history database for the read-only commands.
func withStore(cmd *cobra.Command, fn func(store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DB.Disabled {
		return errHistoryDisabled
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st.EventRepo())
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of batches to show")
	historyCmd.Flags().StringP("module", "m", "", "Only show this module")
	historyCmd.Flags().Bool("settings", false, "Print each batch's settings JSON")

	historyCmd.AddCommand(historyStatsCmd)
}
