package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worksheetz",
	Short: "Printable primary-school worksheet generator",
	Long: `Worksheetz generates randomized primary-school worksheet problems
(arithmetic, fractions, decimals, measurement, geometry, time, map reading
and more) with Turkish text. Run without a subcommand to browse modules.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: ./worksheetz.yaml or $XDG_CONFIG_HOME/worksheetz/worksheetz.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides db.path)")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
