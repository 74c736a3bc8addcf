package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/createforge/internal/plugin"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
)

type pluginsOptions struct {
	search   string
	category string
}

func newPluginsCmd(app *AppContext) *cobra.Command {
	opts := &pluginsOptions{}

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List available plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlugins(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search plugins by name or description")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Filter by category (payment, auth, database, ai, ...)")

	return cmd
}

func runPlugins(cmd *cobra.Command, app *AppContext, opts *pluginsOptions) error {
	out := ui.NewPrinter(cmd.OutOrStdout())
	title := cases.Title(language.English)

	plugins := app.Registry.List()
	heading := "Available Plugins"
	switch {
	case opts.search != "":
		plugins = app.Registry.Search(opts.search)
		heading = fmt.Sprintf("Search results for %q", opts.search)
	case opts.category != "":
		category := plugin.Category(strings.ToLower(opts.category))
		plugins = app.Registry.ByCategory(category)
		heading = category.Label()
	}

	out.Intro(heading)
	if len(plugins) == 0 {
		out.Warning("No plugins found matching your criteria")
		out.Info("Try: forge plugins or forge plugins --search auth")
		return nil
	}

	if opts.search != "" || opts.category != "" {
		out.Table([]string{"Plugin", "Description", "Category"}, pluginRows(plugins, func(p plugin.Plugin) string {
			return title.String(string(p.Category))
		}))
	} else {
		out.Heading("Popular Plugins")
		out.Table([]string{"Plugin", "Description", "Category"}, pluginRows(app.Registry.Popular(), func(p plugin.Plugin) string {
			return title.String(string(p.Category))
		}))
		for _, category := range plugin.Categories() {
			members := app.Registry.ByCategory(category)
			if len(members) == 0 {
				continue
			}
			out.Blank()
			out.Heading(category.Label())
			out.Table([]string{"Plugin", "Description", "Packages"}, pluginRows(members, packageSummary))
		}
	}

	out.Blank()
	out.Info(fmt.Sprintf("Total: %d plugins available", len(plugins)))
	out.Info("Use `forge add <plugin>` to install any plugin")
	out.Outro("Build something amazing!")
	return nil
}

func pluginRows(plugins []plugin.Plugin, last func(plugin.Plugin) string) [][]string {
	rows := make([][]string, 0, len(plugins))
	for _, p := range plugins {
		rows = append(rows, []string{p.ID, p.Description, last(p)})
	}
	return rows
}

func packageSummary(p plugin.Plugin) string {
	if len(p.Packages) <= 2 {
		return strings.Join(p.Packages, ", ")
	}
	return strings.Join(p.Packages[:2], ", ") + "..."
}
