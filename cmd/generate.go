package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate <module>",
	Short: "Generate a batch of problems and print it",
	Long: `Generate a batch of problems for one module.

Settings are the module's JSON settings object, inline or as @file:

  worksheetz generate arithmetic --settings @addition.json
  worksheetz generate fractions --settings @fractions.json --count 20 --answers

The printed seed replays the batch exactly with --seed.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntP("count", "n", 0, "Number of problems (0 = generation.default_count)")
	generateCmd.Flags().Uint64("seed", 0, "Seed to replay (0 = random)")
	generateCmd.Flags().String("settings", "", "Module settings as JSON, or @path to a JSON file")
	generateCmd.Flags().Bool("answers", false, "Print the answer key")
	generateCmd.Flags().Bool("auto-fit", false, "Size the batch to fill an A4 page")
	generateCmd.Flags().Bool("json", false, "Print the batch as JSON")
}

type batchJSON struct {
	problem.Batch
	Error     string       `json:"error,omitempty"`
	ErrorKind problem.Kind `json:"errorKind,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, _ := cmd.Flags().GetString("settings")
	raw, err := readSettings(settings)
	if err != nil {
		return err
	}
	req, err := worksheet.DecodeRequest(worksheet.ModuleID(args[0]), raw)
	if err != nil {
		return fmt.Errorf("%w (see 'worksheetz modules')", err)
	}
	req.Count, _ = cmd.Flags().GetInt("count")
	req.Seed, _ = cmd.Flags().GetUint64("seed")
	req.AutoFit, _ = cmd.Flags().GetBool("auto-fit")

	rt, err := newRuntime(cmd, runtimeOptions{})
	if err != nil {
		return err
	}
	defer rt.Close()

	batch := rt.dispatcher.Generate(commandContext(cmd), req)
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(batchJSON{
			Batch:     batch,
			Error:     batch.ErrorMessage(),
			ErrorKind: problem.KindOf(batch.Err),
		}); err != nil {
			return err
		}
	} else {
		answers, _ := cmd.Flags().GetBool("answers")
		printBatch(out, batch, answers)
	}

	if batch.Err != nil {
		return fmt.Errorf("generation failed: %w", batch.Err)
	}
	return nil
}

func readSettings(v string) ([]byte, error) {
	if path, ok := strings.CutPrefix(v, "@"); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		return b, nil
	}
	return []byte(v), nil
}

// printBatch writes batch as numbered plain text.
func printBatch(w io.Writer, b problem.Batch, answers bool) {
	fmt.Fprintf(w, "%s\n", b.Title)
	fmt.Fprintf(w, "%s  seed %d\n\n", b.Module, b.Seed)

	for i, p := range b.Problems {
		lines := strings.Split(markup.PlainText(p.Question), "\n")
		fmt.Fprintf(w, "%3d. %s\n", i+1, lines[0])
		for _, l := range lines[1:] {
			fmt.Fprintf(w, "     %s\n", l)
		}
	}

	if !answers {
		return
	}
	fmt.Fprintf(w, "\nCevap Anahtarı\n\n")
	for i, p := range b.Problems {
		ans := strings.ReplaceAll(markup.PlainText(p.Answer), "\n", " ")
		fmt.Fprintf(w, "%3d. %s\n", i+1, ans)
	}
}
