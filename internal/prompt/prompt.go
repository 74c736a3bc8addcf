// Package prompt implements the interactive questions asked by create and profile.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts a prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New("operation cancelled")

// Option is one choice in a select prompt.
type Option struct {
	Value string
	Label string
	Hint  string
}

// TextRequest asks for a line of free text.
type TextRequest struct {
	Message     string
	Placeholder string
	Default     string
	Validate    func(string) error
}

// SelectRequest asks for exactly one option.
type SelectRequest struct {
	Message string
	Options []Option
	Initial string
}

// MultiSelectRequest asks for any number of options.
type MultiSelectRequest struct {
	Message  string
	Options  []Option
	Initial  []string
	Required bool
}

// ConfirmRequest asks a yes/no question.
type ConfirmRequest struct {
	Message string
	Default bool
}

// Prompter is the interactive prompt layer used by commands.
type Prompter interface {
	Text(TextRequest) (string, error)
	Select(SelectRequest) (string, error)
	MultiSelect(MultiSelectRequest) ([]string, error)
	Confirm(ConfirmRequest) (bool, error)
}

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TeaPrompter renders prompts as short-lived bubbletea programs.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

var _ Prompter = (*TeaPrompter)(nil)

// NewTeaPrompter returns a prompter bound to the process terminal.
func NewTeaPrompter() *TeaPrompter {
	return &TeaPrompter{In: os.Stdin, Out: os.Stdout}
}

type outcome interface {
	tea.Model
	cancelled() bool
}

func (p *TeaPrompter) run(m outcome) (tea.Model, error) {
	opts := []tea.ProgramOption{}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	if final.(outcome).cancelled() {
		return nil, ErrCancelled
	}
	return final, nil
}

// Text asks for free text.
func (p *TeaPrompter) Text(req TextRequest) (string, error) {
	final, err := p.run(newTextModel(req))
	if err != nil {
		return "", err
	}
	return final.(textModel).value(), nil
}

// Select asks for one option and returns its value.
func (p *TeaPrompter) Select(req SelectRequest) (string, error) {
	if len(req.Options) == 0 {
		return "", errors.New("select prompt has no options")
	}
	final, err := p.run(newSelectModel(req))
	if err != nil {
		return "", err
	}
	return final.(selectModel).value(), nil
}

// MultiSelect asks for several options and returns their values in option order.
func (p *TeaPrompter) MultiSelect(req MultiSelectRequest) ([]string, error) {
	final, err := p.run(newMultiSelectModel(req))
	if err != nil {
		return nil, err
	}
	return final.(multiSelectModel).values(), nil
}

// Confirm asks a yes/no question.
func (p *TeaPrompter) Confirm(req ConfirmRequest) (bool, error) {
	final, err := p.run(newConfirmModel(req))
	if err != nil {
		return false, err
	}
	return final.(confirmModel).answer, nil
}
