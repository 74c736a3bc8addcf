package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/createforge/internal/project"
	"github.com/alexisbeaulieu97/createforge/internal/prompt"
	"github.com/alexisbeaulieu97/createforge/internal/template"
	"github.com/alexisbeaulieu97/createforge/internal/tui"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
	forgeerrors "github.com/alexisbeaulieu97/createforge/pkg/errors"
)

const browseAllTemplates = "browse"

type createOptions struct {
	template  string
	noInstall bool
	noGit     bool
}

func newCreateCmd(app *AppContext) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new app from a template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			log := app.Logger.WithFields(map[string]any{"command": "create", "project": name})
			log.Info("creating project")
			err := runCreate(cmd.Context(), cmd, app, name, opts)
			if err != nil {
				log.Error(err, "create command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Template to use (nextjs-saas, ai-rag, ...)")
	cmd.Flags().BoolVar(&opts.noInstall, "no-install", false, "Skip dependency installation")
	cmd.Flags().BoolVar(&opts.noGit, "no-git", false, "Skip git initialization")

	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, app *AppContext, name string, opts *createOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := ui.NewPrinter(cmd.OutOrStdout())
	out.Intro("CreateForge")

	name, err := resolveProjectName(app, name)
	if cancelled(out, err) {
		return nil
	}
	if err != nil {
		return err
	}

	tmpl, err := resolveTemplate(app, opts.template)
	if cancelled(out, err) {
		return nil
	}
	if err != nil {
		return err
	}
	out.Info("Using " + out.Badge(tmpl.Name, ui.VariantPrimary))

	view := startProgress(app.Interactive && isTerminal(out.Writer()), out.Writer(), tui.NewModel("Creating "+name, []tui.Step{
		{ID: project.StepClone, Label: "Clone template"},
		{ID: project.StepInstall, Label: "Install dependencies"},
		{ID: project.StepGit, Label: "Initialize git repository"},
	}))
	creator := &project.Creator{
		Fs:        app.Fs,
		Cloner:    app.Cloner,
		Installer: app.Installer,
		Git:       app.Git,
		Logger:    app.Logger,
		BaseURL:   app.Settings.TemplateBaseURL,
		OnStep:    view.send,
		Now:       app.Now,
	}
	outcome, createErr := creator.Create(ctx, project.Request{
		Name:     name,
		Dir:      app.WorkDir,
		Template: tmpl,
		Install:  !opts.noInstall,
		InitGit:  !opts.noGit,
	})
	if _, err := view.finish(); err != nil {
		app.Logger.Warn(fmt.Sprintf("progress view stopped: %v", err))
	}
	if createErr != nil {
		return createError(name, createErr)
	}

	store := app.ProfileStore()
	if err := store.RecordProjectCreated(); err != nil {
		out.Warning(fmt.Sprintf("Could not update profile stats: %v", err))
	}
	if err := store.AddRecentTemplate(tmpl.ID); err != nil {
		out.Warning(fmt.Sprintf("Could not record recent template: %v", err))
	}

	for _, w := range outcome.Warnings() {
		out.Warning(fmt.Sprintf("%s: %v", w.Message, w.Error))
	}

	elapsed := fmt.Sprintf("%.1fs", outcome.Elapsed.Round(100*time.Millisecond).Seconds())
	lines := []string{
		fmt.Sprintf("%s Created in %s", out.Badge("SUCCESS", ui.VariantSuccess), elapsed),
		"",
		"Next steps:",
		"  cd " + name,
	}
	if opts.noInstall {
		lines = append(lines, "  npm install")
	}
	lines = append(lines, "  npm run dev")
	if tmpl.HasSeedData {
		lines = append(lines, "", "Demo data is already seeded, check it out!")
	}
	if tmpl.HasTests {
		lines = append(lines, "✓ Tests included, run `npm test`")
	}
	out.Blank()
	out.Box("Your app is ready!", lines)
	out.Info("Add plugins: forge add stripe")
	out.Info("Check health: forge health")
	out.Outro("Happy building!")

	if err := store.RecordFirstSuccess(); err != nil {
		app.Logger.Warn(fmt.Sprintf("could not record first success: %v", err))
	}
	return nil
}

func resolveProjectName(app *AppContext, name string) (string, error) {
	if name != "" {
		if err := project.ValidateName(name); err != nil {
			return "", createError(name, err)
		}
		return name, nil
	}
	if !app.Interactive {
		return "", newCommandError("create project", "reading project name", errors.New("no project name given"),
			"Pass the name as an argument, for example: forge create my-app")
	}
	return app.Prompter.Text(prompt.TextRequest{
		Message:     "What is your project called?",
		Placeholder: "my-awesome-app",
		Validate:    project.ValidateName,
	})
}

func resolveTemplate(app *AppContext, id string) (template.Template, error) {
	if id == "" {
		if !app.Interactive {
			return template.Template{}, newCommandError("create project", "choosing a template", errors.New("no template given"),
				"Pass --template <id>; run 'forge templates' to see the options.")
		}
		picked, err := pickTemplate(app)
		if err != nil {
			return template.Template{}, err
		}
		id = picked
	}

	tmpl, ok := app.Catalog.Get(id)
	if !ok {
		err := forgeerrors.NewNotFoundError("template", id, app.Catalog.IDs())
		return template.Template{}, newCommandError("create project", fmt.Sprintf("looking up template %q", id), err, notFoundSuggestion(err, "forge templates"))
	}
	return tmpl, nil
}

func pickTemplate(app *AppContext) (string, error) {
	var initial string
	if doc, err := app.ProfileStore().Load(); err == nil && len(doc.Templates.Recent) > 0 {
		initial = doc.Templates.Recent[0]
	}

	options := templateOptions(app.Catalog.Featured())
	options = append(options, prompt.Option{
		Value: browseAllTemplates,
		Label: "→ Browse all templates",
		Hint:  fmt.Sprintf("%d available", len(app.Catalog.List())),
	})
	choice, err := app.Prompter.Select(prompt.SelectRequest{Message: "Pick your stack", Options: options, Initial: initial})
	if err != nil || choice != browseAllTemplates {
		return choice, err
	}
	return app.Prompter.Select(prompt.SelectRequest{
		Message: "Choose a template",
		Options: templateOptions(app.Catalog.List()),
		Initial: initial,
	})
}

func templateOptions(templates []template.Template) []prompt.Option {
	options := make([]prompt.Option, 0, len(templates)+1)
	for _, t := range templates {
		label := t.Name
		if t.BattleTested {
			label += " ⚔"
		}
		options = append(options, prompt.Option{Value: t.ID, Label: label, Hint: t.Description})
	}
	return options
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && prompt.Interactive(f)
}

func createError(name string, err error) error {
	var validation *forgeerrors.ValidationError
	if errors.As(err, &validation) {
		return newCommandError("create project", fmt.Sprintf("checking %q", name), err,
			"Use lowercase letters, numbers, and hyphens, and pick a directory that does not exist yet.")
	}
	return newCommandError("create project", fmt.Sprintf("creating %q", name), err, "Check disk space and permissions, then retry.")
}
