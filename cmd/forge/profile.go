package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/createforge/internal/profile"
	"github.com/alexisbeaulieu97/createforge/internal/prompt"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
)

type profileOptions struct {
	edit bool
}

var stackOptions = []prompt.Option{
	{Value: "nextjs", Label: "Next.js"},
	{Value: "typescript", Label: "TypeScript"},
	{Value: "tailwind", Label: "Tailwind CSS"},
	{Value: "stripe", Label: "Stripe"},
	{Value: "clerk", Label: "Clerk Auth"},
	{Value: "supabase", Label: "Supabase"},
	{Value: "openai", Label: "OpenAI"},
	{Value: "vercel", Label: "Vercel"},
}

func newProfileCmd(app *AppContext) *cobra.Command {
	opts := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your Forge profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.edit {
				return runProfileEdit(cmd, app)
			}
			return runProfileShow(cmd, app)
		},
	}

	cmd.Flags().BoolVar(&opts.edit, "edit", false, "Edit profile settings")

	return cmd
}

func runProfileShow(cmd *cobra.Command, app *AppContext) error {
	out := ui.NewPrinter(cmd.OutOrStdout())
	out.Intro("Forge Profile")

	doc, err := app.ProfileStore().Load()
	if err != nil {
		return newCommandError("show profile", app.Settings.ProfilePath, err, "Fix or delete the profile file; it is recreated on the next edit.")
	}

	name := doc.Profile.Name
	if name == "" {
		name = "Not set"
	}
	lines := []string{
		"Name: " + name,
		fmt.Sprintf("Projects created: %d", doc.Stats.ProjectsCreated),
	}
	if doc.Stats.FirstSuccess != nil {
		lines = append(lines, "First success: "+doc.Stats.FirstSuccess.Format("2006-01-02"))
	}
	if doc.Profile.CodeStyle != "" {
		lines = append(lines, "Code style: "+doc.Profile.CodeStyle)
	}
	lines = append(lines, "", "Favorite Stack:")
	lines = append(lines, bulletList(doc.Profile.FavoriteStack, "(not set)")...)
	lines = append(lines, "", "Recent Templates:")
	lines = append(lines, bulletList(doc.Templates.Recent, "(none)")...)

	out.Box("Your Profile", lines)
	out.Blank()
	out.Info("Edit your profile: forge profile --edit")
	out.Outro("Keep building!")
	return nil
}

func runProfileEdit(cmd *cobra.Command, app *AppContext) error {
	out := ui.NewPrinter(cmd.OutOrStdout())
	out.Intro("Edit Profile")

	if !app.Interactive {
		return newCommandError("edit profile", "starting prompts", errors.New("no terminal attached"), "Run 'forge profile --edit' from an interactive terminal.")
	}

	store := app.ProfileStore()
	doc, err := store.Load()
	if err != nil {
		return newCommandError("edit profile", app.Settings.ProfilePath, err, "Fix or delete the profile file and try again.")
	}

	placeholder := doc.Profile.Name
	if placeholder == "" {
		placeholder = "Developer"
	}
	name, err := app.Prompter.Text(prompt.TextRequest{Message: "Your name (optional)", Placeholder: placeholder, Default: doc.Profile.Name})
	if cancelled(out, err) {
		return nil
	}
	if err != nil {
		return err
	}

	stack, err := app.Prompter.MultiSelect(prompt.MultiSelectRequest{
		Message: "Select your favorite stack",
		Options: stackOptions,
		Initial: doc.Profile.FavoriteStack,
	})
	if cancelled(out, err) {
		return nil
	}
	if err != nil {
		return err
	}

	initialStyle := doc.Profile.CodeStyle
	if initialStyle == "" {
		initialStyle = profile.CodeStyles[0]
	}
	styles := make([]prompt.Option, 0, len(profile.CodeStyles))
	for _, s := range profile.CodeStyles {
		styles = append(styles, prompt.Option{Value: s, Label: s})
	}
	style, err := app.Prompter.Select(prompt.SelectRequest{Message: "Preferred code style", Options: styles, Initial: initialStyle})
	if cancelled(out, err) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = store.Update(func(d *profile.Document) error {
		d.Profile.Name = name
		d.Profile.FavoriteStack = stack
		d.Profile.CodeStyle = style
		return nil
	})
	if err != nil {
		return newCommandError("edit profile", "saving "+store.Path(), err, "Check that the profile directory is writable.")
	}

	out.Success("Profile updated!")
	out.Outro("Your preferences will be used for new projects")
	return nil
}

func bulletList(items []string, empty string) []string {
	if len(items) == 0 {
		return []string{"  " + empty}
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "  • "+item)
	}
	return lines
}
