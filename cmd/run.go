package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/app"
)

// runApp builds the runtime and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd, runtimeOptions{quietLog: true})
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := app.Options{
		Generator: rt.dispatcher,
		AIEnabled: rt.aiEnabled,
	}
	if rt.events != nil {
		opts.History = rt.events
	}
	return app.Run(opts)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse modules and preview worksheets in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
