package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/createforge/internal/health"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
)

func newHealthCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the project in the current directory for common gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runHealth(cmd, app)
			return nil
		},
	}

	return cmd
}

func runHealth(cmd *cobra.Command, app *AppContext) {
	out := ui.NewPrinter(cmd.OutOrStdout())
	out.Intro("Forge Health")

	report := health.Run(app.Fs, app.WorkDir, health.Options{
		EnvFile:  app.Settings.EnvFile,
		Minimums: health.DefaultMinimums(),
	})
	app.Logger.WithFields(map[string]any{"score": report.Score, "total": report.Total}).Debug("health checks finished")

	lines := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		lines = append(lines, fmt.Sprintf("%s %s: %s", healthIcon(c.Status), c.Name, c.Message))
	}
	out.Box("Health Report", lines)

	if fixable := report.Fixable(); len(fixable) > 0 {
		out.Blank()
		out.Info("Recommended fixes:")
		for _, c := range fixable {
			out.Muted(fmt.Sprintf("%s: %s", c.Name, c.Fix))
		}
	}

	if report.Perfect() {
		out.Outro(fmt.Sprintf("Perfect score! %d/%d checks passed", report.Score, report.Total))
		return
	}
	out.Outro(fmt.Sprintf("Health score: %d/%d checks passed", report.Score, report.Total))
}

func healthIcon(status health.Status) string {
	switch status {
	case health.StatusPass:
		return "✓"
	case health.StatusWarn:
		return "⚠"
	default:
		return "✗"
	}
}
