package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPluginsCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "full catalog grouped by category",
			args:     []string{"plugins"},
			contains: []string{"Popular Plugins", "Payment Processing", "State Management", "@stripe/stripe-js", "Total: 30 plugins available"},
		},
		{
			name:     "category filter",
			args:     []string{"plugins", "--category", "Payment"},
			contains: []string{"stripe", "paypal", "Total: 2 plugins available"},
			excludes: []string{"clerk", "Popular Plugins"},
		},
		{
			name:     "search",
			args:     []string{"plugins", "-s", "state"},
			contains: []string{`Search results for "state"`, "zustand", "redux"},
			excludes: []string{"stripe"},
		},
		{
			name:     "no matches",
			args:     []string{"plugins", "--search", "cobol"},
			contains: []string{"No plugins found matching your criteria"},
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

func TestPackageSummary(t *testing.T) {
	app := newTestApp(t)

	chakra, ok := app.Registry.Lookup("chakra")
	require.True(t, ok)
	require.Equal(t, "@chakra-ui/react, @emotion/react...", packageSummary(chakra))

	zustand, ok := app.Registry.Lookup("zustand")
	require.True(t, ok)
	require.Equal(t, "zustand", packageSummary(zustand))
}
