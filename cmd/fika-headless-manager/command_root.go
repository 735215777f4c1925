package main

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	run := newRunCmd()

	root := &cobra.Command{
		Use:           "fika-headless-manager",
		Short:         "Watchdog for the Fika headless client",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Double-clicking the binary must behave like `run`.
		RunE: run.RunE,
	}

	root.AddCommand(run)
	root.AddCommand(newCheckCmd())

	return root
}
