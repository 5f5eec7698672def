package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/llm"
	"github.com/abhisek/worksheetz/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withStore(cmd, func(repo store.EventRepo) error {
			events, err := repo.QueryLLMRequests(commandContext(cmd), store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No LLM calls recorded.")
				return nil
			}

			t := newTable(out, "Seq", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
			for _, e := range events {
				if purpose != "" && e.Purpose != purpose {
					continue
				}
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				t.row(e.Sequence, e.Timestamp, e.Purpose, clip(e.Model, 28), e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
			}
			return t.flush()
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "Print the prompt and raw output of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("sequence %q is not a number", args[0])
		}
		return withStore(cmd, func(repo store.EventRepo) error {
			e, err := repo.GetLLMRequest(commandContext(cmd), seq)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("no LLM call with sequence %d", seq)
			}
			printLLMEvent(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

func printLLMEvent(out io.Writer, e *store.LLMRequestEvent) {
	fields := [][2]string{
		{"Seq", strconv.FormatInt(e.Sequence, 10)},
		{"Time", e.Timestamp.Local().Format(timeLayout)},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Success", strconv.FormatBool(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-10s %s\n", f[0]+":", f[1])
	}

	rule := strings.Repeat("─", 60)
	for _, part := range [][2]string{{"REQUEST", e.RequestBody}, {"RESPONSE", e.ResponseBody}} {
		body := part[1]
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintf(out, "\n%s\n%s\n%s\n%s\n", rule, part[0], rule, body)
	}
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(repo store.EventRepo) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			byPurpose, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded.")
				return nil
			}
			byModel, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}

			fmt.Fprintln(out, "Usage by purpose")
			if err := printUsage(out, byPurpose); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nEstimated cost (USD)")
			return printCost(out, byModel)
		})
	},
}

func printUsage(out io.Writer, usage []store.Usage) error {
	t := newTable(out, "Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	var sum store.Usage
	for _, u := range usage {
		t.row(u.Key, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		sum.Calls += u.Calls
		sum.InputTokens += u.InputTokens
		sum.OutputTokens += u.OutputTokens
	}
	t.rule()
	t.row("TOTAL", sum.Calls, sum.InputTokens, sum.OutputTokens, sum.InputTokens+sum.OutputTokens, "")
	return t.flush()
}

// printCost prices each model's tokens. Models missing from the price list
// are shown with "?" and make the total partial.
func printCost(out io.Writer, usage []store.Usage) error {
	t := newTable(out, "Model", "Calls", "Input", "Output", "Cost")
	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if price, ok := llm.LookupCost(u.Key); ok {
			c := price.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = usd(c)
		} else {
			unpriced = append(unpriced, u.Key)
		}
		t.row(clip(u.Key, 32), u.Calls, u.InputTokens, u.OutputTokens, cost)
	}
	t.rule()
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	t.row(label, "", "", "", usd(total))
	if err := t.flush(); err != nil {
		return err
	}
	if len(unpriced) > 0 {
		fmt.Fprintf(out, "\nNo price for: %s\n", strings.Join(unpriced, ", "))
	}
	return nil
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show this purpose (e.g. worksheet-gen)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
