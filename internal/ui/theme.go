// Package ui renders user-facing command output with lipgloss.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Variant selects the colour and icon of a message or badge.
type Variant int

const (
	VariantDefault Variant = iota
	VariantPrimary
	VariantSuccess
	VariantWarning
	VariantError
	VariantInfo
	VariantMuted
)

// Palette holds the adaptive colours used across the CLI.
type Palette struct {
	Primary lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
}

// Theme groups the palette and the icons printed before messages.
type Theme struct {
	Palette Palette
	Icons   map[Variant]string
}

// DefaultTheme returns the CreateForge theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: Palette{
			Primary: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
			Success: lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
			Warning: lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FACC15"},
			Danger:  lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
			Info:    lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"},
			Muted:   lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"},
			Text:    lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F1F5F9"},
		},
		Icons: map[Variant]string{
			VariantSuccess: "✓",
			VariantWarning: "⚠",
			VariantError:   "✗",
			VariantInfo:    "ℹ",
			VariantPrimary: "→",
		},
	}
}

// Color returns the foreground colour for a variant.
func (t Theme) Color(v Variant) lipgloss.AdaptiveColor {
	switch v {
	case VariantPrimary:
		return t.Palette.Primary
	case VariantSuccess:
		return t.Palette.Success
	case VariantWarning:
		return t.Palette.Warning
	case VariantError:
		return t.Palette.Danger
	case VariantInfo:
		return t.Palette.Info
	case VariantMuted:
		return t.Palette.Muted
	default:
		return t.Palette.Text
	}
}

// Icon returns the icon for a variant, or "" when it has none.
func (t Theme) Icon(v Variant) string {
	return t.Icons[v]
}
