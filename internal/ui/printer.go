package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Printer writes styled lines to a single writer. Colour support is detected
// from the writer, so buffers in tests receive plain text.
type Printer struct {
	out      io.Writer
	theme    Theme
	renderer *lipgloss.Renderer
}

// NewPrinter returns a Printer using the default theme.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, theme: DefaultTheme(), renderer: lipgloss.NewRenderer(out)}
}

// Writer exposes the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) style(v Variant) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(p.theme.Color(v))
}

// Message prints msg prefixed with the variant's icon.
func (p *Printer) Message(v Variant, msg string) {
	icon := p.theme.Icon(v)
	if icon != "" {
		icon = p.style(v).Bold(true).Render(icon) + " "
	}
	fmt.Fprintln(p.out, icon+msg)
}

func (p *Printer) Success(msg string) { p.Message(VariantSuccess, msg) }
func (p *Printer) Warning(msg string) { p.Message(VariantWarning, msg) }
func (p *Printer) Error(msg string)   { p.Message(VariantError, msg) }
func (p *Printer) Info(msg string)    { p.Message(VariantInfo, msg) }
func (p *Printer) Step(msg string)    { p.Message(VariantPrimary, msg) }

// Muted prints a dimmed, indented line.
func (p *Printer) Muted(msg string) {
	fmt.Fprintln(p.out, "  "+p.style(VariantMuted).Render(msg))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Heading prints a bold section title.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.out, p.style(VariantPrimary).Bold(true).Render(title))
}

// Intro prints the banner that opens an interactive command.
func (p *Printer) Intro(title string) {
	badge := p.renderer.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"}).
		Background(p.theme.Color(VariantPrimary)).
		Render(title)
	fmt.Fprintln(p.out, badge)
	fmt.Fprintln(p.out)
}

// Outro prints a closing line.
func (p *Printer) Outro(msg string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.style(VariantMuted).Render("└ ")+msg)
}

// Badge renders a short inline label.
func (p *Printer) Badge(text string, v Variant) string {
	return p.style(v).Bold(true).Render("[" + text + "]")
}

// Box prints a rounded box with a title and one entry per line.
func (p *Printer) Box(title string, lines []string) {
	body := p.style(VariantPrimary).Bold(true).Render(title)
	if len(lines) > 0 {
		body += "\n\n" + strings.Join(lines, "\n")
	}
	box := p.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.Color(VariantPrimary)).
		Padding(0, 1).
		Render(body)
	fmt.Fprintln(p.out, box)
}

// Table prints rows under a header row.
func (p *Printer) Table(headers []string, rows [][]string) {
	headerStyle := p.renderer.NewStyle().Bold(true).Foreground(p.theme.Color(VariantPrimary)).Padding(0, 1)
	cellStyle := p.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.style(VariantMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(p.out, t.Render())
}
