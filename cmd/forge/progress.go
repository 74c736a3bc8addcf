package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/createforge/internal/model"
	"github.com/alexisbeaulieu97/createforge/internal/tui"
)

// progressView drives the step list either through a live bubbletea program
// or, without a terminal, by folding messages into the model and printing
// the final frame once.
type progressView struct {
	interactive bool
	out         io.Writer
	state       tui.Model
	program     *tea.Program
	done        chan struct{}
	programErr  error
}

func startProgress(interactive bool, out io.Writer, state tui.Model) *progressView {
	v := &progressView{interactive: interactive, out: out, state: state, done: make(chan struct{})}
	if !interactive {
		close(v.done)
		return v
	}

	v.program = tea.NewProgram(state, tea.WithOutput(out))
	go func() {
		final, err := v.program.Run()
		if m, ok := final.(tui.Model); ok {
			v.state = m
		}
		v.programErr = err
		close(v.done)
	}()
	return v
}

func (v *progressView) send(res model.StepResult) {
	dispatchTuiMessage(v.interactive, v.program, &v.state, tui.StepMsg{Result: res})
}

// finish stops the live view, or prints the final frame, and returns the
// last model state.
func (v *progressView) finish() (tui.Model, error) {
	if v.interactive {
		if v.program != nil {
			v.program.Send(tui.DoneMsg{})
		}
		<-v.done
		return v.state, v.programErr
	}

	fmt.Fprint(v.out, v.state.View())
	return v.state, nil
}

func dispatchTuiMessage(interactive bool, program *tea.Program, state *tui.Model, msg tea.Msg) {
	if interactive {
		if program != nil {
			program.Send(msg)
		}
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
