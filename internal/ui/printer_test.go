package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessagesCarryVariantIcons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(*Printer, string)
		icon  string
	}{
		{"success", (*Printer).Success, "✓"},
		{"warning", (*Printer).Warning, "⚠"},
		{"error", (*Printer).Error, "✗"},
		{"info", (*Printer).Info, "ℹ"},
		{"step", (*Printer).Step, "→"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf), "hello")
			require.Equal(t, tt.icon+" hello\n", buf.String())
		})
	}
}

func TestMessageWithoutIcon(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf).Message(VariantDefault, "plain")
	require.Equal(t, "plain\n", buf.String())
}

func TestBoxIncludesTitleAndLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf).Box("Stripe installed", []string{"1. Add API keys", "2. Run the dev server"})

	out := buf.String()
	require.Contains(t, out, "Stripe installed")
	require.Contains(t, out, "1. Add API keys")
	require.Contains(t, out, "╭")
}

func TestTableRendersHeadersAndRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf).Table([]string{"ID", "Name"}, [][]string{{"stripe", "Stripe Payments"}, {"clerk", "Clerk Auth"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	require.Contains(t, buf.String(), "Stripe Payments")
	require.Contains(t, buf.String(), "clerk")
}

func TestBadgeWrapsText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.Equal(t, "[featured]", NewPrinter(&buf).Badge("featured", VariantSuccess))
}

func TestThemeColorFallsBackToText(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.Equal(t, theme.Palette.Text, theme.Color(Variant(99)))
	require.Empty(t, theme.Icon(VariantMuted))
}
