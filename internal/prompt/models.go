package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func isCancel(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc
}

type textModel struct {
	req      TextRequest
	input    textinput.Model
	err      string
	done     bool
	aborted  bool
	answered string
}

func newTextModel(req TextRequest) textModel {
	input := textinput.New()
	input.Placeholder = req.Placeholder
	if req.Placeholder == "" {
		input.Placeholder = req.Default
	}
	input.Focus()
	return textModel{req: req, input: input}
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case isCancel(key):
			m.aborted = true
			return m, tea.Quit
		case key.Type == tea.KeyEnter:
			answer := strings.TrimSpace(m.input.Value())
			if answer == "" {
				answer = m.req.Default
			}
			if m.req.Validate != nil {
				if err := m.req.Validate(answer); err != nil {
					m.err = err.Error()
					return m, nil
				}
			}
			m.answered = answer
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return questionStyle.Render(m.req.Message) + " " + answerStyle.Render(m.answered) + "\n"
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.req.Message) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}
	return b.String()
}

func (m textModel) cancelled() bool { return m.aborted }
func (m textModel) value() string   { return m.answered }

type selectModel struct {
	req     SelectRequest
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(req SelectRequest) selectModel {
	m := selectModel{req: req}
	for i, opt := range req.Options {
		if opt.Value == req.Initial {
			m.cursor = i
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case isCancel(key):
		m.aborted = true
		return m, tea.Quit
	case key.Type == tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case key.Type == tea.KeyUp || key.String() == "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Type == tea.KeyDown || key.String() == "j":
		if m.cursor < len(m.req.Options)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return questionStyle.Render(m.req.Message) + " " + answerStyle.Render(m.req.Options[m.cursor].Label) + "\n"
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.req.Message) + "\n")
	for i, opt := range m.req.Options {
		b.WriteString(optionLine(i == m.cursor, "", opt) + "\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ to move, enter to select, esc to cancel") + "\n")
	return b.String()
}

func (m selectModel) cancelled() bool { return m.aborted }

func (m selectModel) value() string {
	if len(m.req.Options) == 0 {
		return ""
	}
	return m.req.Options[m.cursor].Value
}

type multiSelectModel struct {
	req      MultiSelectRequest
	cursor   int
	selected map[int]bool
	err      string
	done     bool
	aborted  bool
}

func newMultiSelectModel(req MultiSelectRequest) multiSelectModel {
	m := multiSelectModel{req: req, selected: make(map[int]bool)}
	for i, opt := range req.Options {
		for _, v := range req.Initial {
			if opt.Value == v {
				m.selected[i] = true
			}
		}
	}
	return m
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case isCancel(key):
		m.aborted = true
		return m, tea.Quit
	case key.Type == tea.KeyEnter:
		if m.req.Required && len(m.values()) == 0 {
			m.err = "select at least one option"
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case key.Type == tea.KeySpace || key.String() == " ":
		if len(m.req.Options) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
			m.err = ""
		}
	case key.Type == tea.KeyUp || key.String() == "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Type == tea.KeyDown || key.String() == "j":
		if m.cursor < len(m.req.Options)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.done {
		var labels []string
		for i, opt := range m.req.Options {
			if m.selected[i] {
				labels = append(labels, opt.Label)
			}
		}
		return questionStyle.Render(m.req.Message) + " " + answerStyle.Render(strings.Join(labels, ", ")) + "\n"
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.req.Message) + "\n")
	for i, opt := range m.req.Options {
		box := "◻ "
		if m.selected[i] {
			box = "◼ "
		}
		b.WriteString(optionLine(i == m.cursor, box, opt) + "\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}
	b.WriteString(hintStyle.Render("space to toggle, enter to confirm, esc to cancel") + "\n")
	return b.String()
}

func (m multiSelectModel) cancelled() bool { return m.aborted }

func (m multiSelectModel) values() []string {
	var out []string
	for i, opt := range m.req.Options {
		if m.selected[i] {
			out = append(out, opt.Value)
		}
	}
	return out
}

type confirmModel struct {
	req     ConfirmRequest
	answer  bool
	done    bool
	aborted bool
}

func newConfirmModel(req ConfirmRequest) confirmModel {
	return confirmModel{req: req, answer: req.Default}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case isCancel(key):
		m.aborted = true
		return m, tea.Quit
	case key.Type == tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case key.String() == "y" || key.String() == "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case key.String() == "n" || key.String() == "N":
		m.answer = false
		m.done = true
		return m, tea.Quit
	case key.Type == tea.KeyLeft, key.Type == tea.KeyRight, key.Type == tea.KeyTab:
		m.answer = !m.answer
	}
	return m, nil
}

func (m confirmModel) View() string {
	var yes, no string
	if m.answer {
		yes = cursorStyle.Render("● Yes")
		no = hintStyle.Render("○ No")
	} else {
		yes = hintStyle.Render("○ Yes")
		no = cursorStyle.Render("● No")
	}
	if m.done {
		answer := "No"
		if m.answer {
			answer = "Yes"
		}
		return questionStyle.Render(m.req.Message) + " " + answerStyle.Render(answer) + "\n"
	}
	return questionStyle.Render(m.req.Message) + "\n" + yes + " / " + no + "\n"
}

func (m confirmModel) cancelled() bool { return m.aborted }

func optionLine(active bool, prefix string, opt Option) string {
	pointer := "  "
	label := prefix + opt.Label
	if active {
		pointer = cursorStyle.Render("› ")
		label = cursorStyle.Render(label)
	}
	if opt.Hint != "" {
		label += " " + hintStyle.Render("("+opt.Hint+")")
	}
	return pointer + label
}
