package tui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		id := msg.Result.StepID
		existing, known := m.steps[id]
		// models are values; copy the maps and slice before writing
		if !known {
			m.order = append(slices.Clone(m.order), id)
			m.labels = maps.Clone(m.labels)
			m.labels[id] = id
			m.progress = m.progress.WithTotal(len(m.order))
		}
		if msg.Result.Done() && !existing.Done() {
			m.completed++
		}
		m.steps = maps.Clone(m.steps)
		m.steps[id] = msg.Result
		return m, nil
	case DoneMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	}

	return m, nil
}
