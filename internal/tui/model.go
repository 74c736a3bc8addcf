// Package tui renders live progress while a project is being created.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/createforge/internal/model"
	"github.com/alexisbeaulieu97/createforge/internal/tui/components"
)

// StepMsg carries a running or finished step result.
type StepMsg struct {
	Result model.StepResult
}

// DoneMsg signals that every step has reported.
type DoneMsg struct{}

// Model is the bubbletea state for the create progress view.
type Model struct {
	title     string
	steps     map[string]model.StepResult
	order     []string
	labels    map[string]string
	spinner   spinner.Model
	progress  components.Progress
	completed int
	finished  bool
	cancelled bool
}

// Step names a step to display before it starts.
type Step struct {
	ID    string
	Label string
}

// NewModel returns a model tracking steps in the given order.
func NewModel(title string, steps []Step) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = warningStyle

	m := Model{
		title:    title,
		steps:    make(map[string]model.StepResult, len(steps)),
		labels:   make(map[string]string, len(steps)),
		spinner:  sp,
		progress: components.NewProgress(len(steps)),
	}
	for _, s := range steps {
		m.order = append(m.order, s.ID)
		m.labels[s.ID] = s.Label
		m.steps[s.ID] = model.StepResult{StepID: s.ID, Status: model.StatusPending}
	}
	return m
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// TotalSteps returns the number of tracked steps.
func (m Model) TotalSteps() int {
	return len(m.order)
}

// CompletedSteps returns the number of steps that reached a terminal status.
func (m Model) CompletedSteps() int {
	return m.completed
}

// IsFinished reports whether the view has stopped updating.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user pressed Ctrl+C.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Result returns the latest result recorded for id.
func (m Model) Result(id string) model.StepResult {
	return m.steps[id]
}
