package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/createforge/internal/app/installer"
	"github.com/alexisbeaulieu97/createforge/internal/model"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
	"github.com/alexisbeaulieu97/createforge/pkg/diff"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

func newAddCmd(rootFlags *rootFlags, app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <plugin-id>",
		Short: "Add a plugin to the project in the current directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.Logger.WithFields(map[string]any{"command": "add", "plugin": args[0]})
			log.Info("adding plugin")
			err := runAdd(cmd.Context(), cmd, app, args[0], rootFlags.verbose)
			if err != nil {
				log.Error(err, "add command failed")
			}
			return err
		},
	}

	return cmd
}

func runAdd(ctx context.Context, cmd *cobra.Command, app *AppContext, id string, verbose bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := ui.NewPrinter(cmd.OutOrStdout())
	svc := installer.NewService(installer.Config{
		Registry:  app.Registry,
		Installer: app.Installer,
		Fs:        app.Fs,
		Hooks:     app.Hooks,
		EnvFile:   app.Settings.EnvFile,
		Logger:    app.Logger,
	})

	out.Intro(fmt.Sprintf("Adding %s to your project", id))
	if p, ok := app.Registry.Lookup(id); ok {
		out.Info("Installing " + out.Badge(p.Name, ui.VariantPrimary))
		out.Muted(p.Description)
		out.Step(fmt.Sprintf("Installing %s...", strings.Join(p.Packages, ", ")))
	}

	report, err := svc.Add(ctx, app.WorkDir, id)
	if err != nil {
		return addError(out, id, err, verbose)
	}

	p := report.Plugin
	out.Success(fmt.Sprintf("Installed %d package(s)", len(p.Packages)))

	if env, ok := report.Step(installer.StepEnv); ok && env.Status != model.StatusSkipped {
		out.Blank()
		out.Info("Environment variables needed:")
		for _, v := range p.EnvVars {
			if slices.Contains(report.Env.Appended, v.Key) {
				out.Muted(fmt.Sprintf("%s - %s", v.Key, v.Description))
			}
		}
		if report.Env.Changed() {
			out.Success(fmt.Sprintf("Added %d environment variable(s) to %s", len(report.Env.Appended), app.Settings.EnvFile))
			if verbose {
				fmt.Fprint(out.Writer(), diff.Unified(report.Env.Before, report.Env.After, "a/"+app.Settings.EnvFile, "b/"+app.Settings.EnvFile))
			}
		}
	}

	if len(report.Files.Written) > 0 {
		out.Success(fmt.Sprintf("Created %d file(s)", len(report.Files.Written)))
	}
	for _, path := range report.Files.Skipped {
		out.Muted("kept existing " + path)
	}
	if setup, ok := report.Step(installer.StepSetup); ok && setup.Status == model.StatusSuccess {
		out.Success("Setup complete")
	}

	for _, w := range report.Warnings() {
		out.Warning(fmt.Sprintf("%s: %v", w.Message, w.Error))
	}

	out.Blank()
	out.Box(fmt.Sprintf("✓ %s installed!", p.Name), nextSteps(len(p.EnvVars) > 0, app.Settings.EnvFile))
	out.Outro("Plugin ready to use!")
	return nil
}

func nextSteps(hasEnv bool, envFile string) []string {
	lines := []string{"Next steps:"}
	if hasEnv {
		lines = append(lines, "  1. Add your API keys to "+envFile)
	}
	return append(lines,
		"  2. Check the docs for usage examples",
		"  3. Run `npm run dev` to test",
	)
}

func addError(out *ui.Printer, id string, err error, verbose bool) error {
	var installErr *forgeerrors.InstallError
	switch {
	case errors.As(err, &installErr):
		out.Error("Failed to install packages")
		if verbose && installErr.Output != "" {
			out.Muted(installErr.Output)
		}
		return newCommandError("add plugin", fmt.Sprintf("installing packages for %q", id), err,
			fmt.Sprintf("Check that %s is installed and the registry is reachable, then retry.", installErr.Manager))
	default:
		out.Error(fmt.Sprintf("Plugin %q not found", id))
		return newCommandError("add plugin", fmt.Sprintf("looking up %q", id), err, notFoundSuggestion(err, "forge plugins"))
	}
}
