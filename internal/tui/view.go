package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/createforge/internal/model"
)

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{
		titleStyle.Render(m.title),
		m.progress.View(m.completed),
		sectionStyle.Render("Steps"),
	}

	var lines []string
	for _, id := range m.order {
		res := m.steps[id]
		icon := StatusIcon(res.Status)
		if res.Status == model.StatusRunning && !m.finished {
			icon = m.spinner.View()
		}
		line := fmt.Sprintf(" %s %s", icon, m.labels[id])
		if strings.TrimSpace(res.Message) != "" {
			line += " " + messageStyle.Render(res.Message)
		}
		if res.Done() && res.Duration > 0 {
			line += messageStyle.Render(fmt.Sprintf(" (%s)", res.Duration.Truncate(10*time.Millisecond)))
		}
		lines = append(lines, line)
	}
	sections = append(sections, strings.Join(lines, "\n"))

	if m.cancelled {
		sections = append(sections, sectionStyle.Render("Cancelled"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// StatusIcon returns the glyph representing a step status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusSuccess:
		return successStyle.Render("✓")
	case model.StatusRunning:
		return warningStyle.Render("⏳")
	case model.StatusWarning:
		return warningStyle.Render("⚠")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusSkipped:
		return skippedStyle.Render("⊘")
	default:
		return pendingStyle.Render("…")
	}
}
