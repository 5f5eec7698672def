package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the worksheet modules",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s  %-28s  %s\n", "Module", "Title", "Notes")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, m := range worksheet.Modules() {
			var notes []string
			if m.Batched {
				notes = append(notes, "batched")
			}
			if m.AI {
				notes = append(notes, "needs llm.provider")
			}
			fmt.Fprintf(out, "%-18s  %-28s  %s\n", m.ID, m.Title, strings.Join(notes, ", "))
		}
	},
}
