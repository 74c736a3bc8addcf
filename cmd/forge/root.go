package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "forge",
		Short:         "Ship full-stack apps, not scaffolds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd, flags.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newAddCmd(flags, app))
	cmd.AddCommand(newPluginsCmd(app))
	cmd.AddCommand(newTemplatesCmd(app))
	cmd.AddCommand(newCreateCmd(app))
	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newHealthCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
