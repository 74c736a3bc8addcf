package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/createforge/internal/template"
	"github.com/alexisbeaulieu97/createforge/internal/ui"
)

type templatesOptions struct {
	featured bool
	category string
	tag      string
	search   string
}

func newTemplatesCmd(app *AppContext) *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.featured, "featured", "f", false, "Show only featured templates")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Filter by category (full-stack, frontend, backend, ...)")
	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "Filter by technology tag")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search templates")

	return cmd
}

func runTemplates(cmd *cobra.Command, app *AppContext, opts *templatesOptions) error {
	out := ui.NewPrinter(cmd.OutOrStdout())
	title := cases.Title(language.English)

	templates := app.Catalog.List()
	heading := "All Templates"
	switch {
	case opts.featured:
		templates = app.Catalog.Featured()
		heading = "Featured Templates"
	case opts.category != "":
		templates = app.Catalog.ByCategory(opts.category)
		heading = title.String(opts.category) + " Templates"
	case opts.tag != "":
		templates = app.Catalog.ByTag(opts.tag)
		heading = "Templates with " + opts.tag
	case opts.search != "":
		templates = app.Catalog.Search(opts.search)
		heading = fmt.Sprintf("Search results for %q", opts.search)
	}

	out.Intro(heading)
	if len(templates) == 0 {
		out.Warning("No templates found matching your criteria")
		out.Info("Try: forge templates --featured or forge templates --category full-stack")
		return nil
	}

	var featured, regular []template.Template
	for _, t := range templates {
		if t.Featured {
			featured = append(featured, t)
		} else {
			regular = append(regular, t)
		}
	}

	if len(featured) > 0 {
		out.Heading("Featured Templates")
		out.Table([]string{"Template", "Description", "Stack"}, templateRows(featured))
	}
	if len(regular) > 0 && !opts.featured {
		out.Blank()
		out.Heading("More Templates")
		out.Table([]string{"Template", "Description", "Stack"}, templateRows(regular))
	}

	if opts.category == "" && opts.tag == "" && opts.search == "" && !opts.featured {
		names := app.Catalog.Categories()
		labels := make([]string, 0, len(names))
		for _, name := range names {
			labels = append(labels, fmt.Sprintf("%s (%d)", title.String(name), len(app.Catalog.ByCategory(name))))
		}
		out.Blank()
		out.Muted("Categories: " + strings.Join(labels, ", "))
	}

	out.Blank()
	out.Info(fmt.Sprintf("Total: %d templates available", len(templates)))
	out.Info("Use `forge create --template <name>` to create a project")
	out.Outro("Happy building!")
	return nil
}

func templateRows(templates []template.Template) [][]string {
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		id := t.ID
		if t.BattleTested {
			id += " ⚔"
		}
		stack := t.Tags
		if len(stack) > 3 {
			stack = stack[:3]
		}
		rows = append(rows, []string{id, t.Description, strings.Join(stack, ", ")})
	}
	return rows
}
