package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplatesCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "all templates",
			args:     []string{"templates"},
			contains: []string{"All Templates", "Featured Templates", "More Templates", "nextjs-saas", "Categories:"},
		},
		{
			name:     "featured only",
			args:     []string{"templates", "--featured"},
			contains: []string{"nextjs-saas ⚔"},
			excludes: []string{"More Templates"},
		},
		{
			name:     "category",
			args:     []string{"templates", "--category", "backend"},
			contains: []string{"Backend Templates", "express-api", "Total: 4 templates available"},
			excludes: []string{"nextjs-saas"},
		},
		{
			name:     "tag",
			args:     []string{"templates", "--tag", "stripe"},
			contains: []string{"Templates with stripe", "nextjs-saas"},
		},
		{
			name:     "no matches",
			args:     []string{"templates", "--search", "cobol"},
			contains: []string{"No templates found matching your criteria"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			out, err := executeCommand(app.AppContext, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				require.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				require.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestTemplatesCategoryHeadingIsTitleCased(t *testing.T) {
	app := newTestApp(t)

	out, err := executeCommand(app.AppContext, "templates", "-c", "full-stack")
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(out), "full-stack templates")
	require.Contains(t, out, "mern-stack")
}
