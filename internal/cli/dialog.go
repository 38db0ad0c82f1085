package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// dialogChrome is the number of lines a dialog uses besides its body:
// border(2) + title and gap(2) + gap and footer(2).
const dialogChrome = 6

var (
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#808080")).
			Padding(0, 1)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true)
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogSuccess
	dialogError
)

// Dialog is a titled message shown to the user after an action.
type Dialog struct {
	Title string
	Body  string
	Kind  dialogKind
}

func infoDialog(title, body string) Dialog {
	return Dialog{Title: title, Body: body, Kind: dialogInfo}
}

func successDialog(body string) Dialog {
	return Dialog{Title: "Success", Body: body, Kind: dialogSuccess}
}

func errorDialog(body string) Dialog {
	return Dialog{Title: "Error", Body: body, Kind: dialogError}
}

// DialogFunc displays a dialog and returns once the user has seen it.
type DialogFunc func(d Dialog) error

// NewDialogFunc shows dialogs as a dismissable modal when out is a terminal
// and prints them as a static box otherwise.
func NewDialogFunc(out io.Writer) DialogFunc {
	return func(d Dialog) error {
		if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			_, err := fmt.Fprint(out, renderDialog(d, d.Body, ""))
			return err
		}

		p := tea.NewProgram(newDialogModel(d), tea.WithOutput(out))
		_, err := p.Run()
		return err
	}
}

func renderDialog(d Dialog, body, footer string) string {
	title := dialogTitleStyle.Render(d.Title)
	switch d.Kind {
	case dialogSuccess:
		title = Success(title)
	case dialogError:
		title = Error(title)
	default:
		title = Info(title)
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(Text(body))
	if footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(Silent(footer))
	}
	return dialogBoxStyle.Render(sb.String()) + "\n"
}

type dialogModel struct {
	dialog     Dialog
	lines      []string
	offset     int // first visible body line
	termHeight int
	closed     bool
}

func newDialogModel(d Dialog) dialogModel {
	return dialogModel{
		dialog:     d,
		lines:      strings.Split(d.Body, "\n"),
		termHeight: 40,
	}
}

func (m dialogModel) Init() tea.Cmd {
	return nil
}

func (m dialogModel) visibleLines() int {
	n := m.termHeight - dialogChrome
	if n < 1 {
		n = 1
	}
	if n > len(m.lines) {
		n = len(m.lines)
	}
	return n
}

func (m dialogModel) maxOffset() int {
	max := len(m.lines) - m.visibleLines()
	if max < 0 {
		return 0
	}
	return max
}

func (m dialogModel) clampOffset() dialogModel {
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m
}

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termHeight = msg.Height
		m = m.clampOffset()
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q", "ctrl+c", " ":
			m.closed = true
			return m, tea.Quit
		case "down", "j":
			m.offset++
			m = m.clampOffset()
		case "up", "k":
			m.offset--
			m = m.clampOffset()
		case "pgdown":
			m.offset += m.visibleLines()
			m = m.clampOffset()
		case "pgup":
			m.offset -= m.visibleLines()
			m = m.clampOffset()
		}
	}
	return m, nil
}

func (m dialogModel) View() string {
	end := m.offset + m.visibleLines()
	body := strings.Join(m.lines[m.offset:end], "\n")

	footer := "enter to close"
	if m.maxOffset() > 0 {
		footer = fmt.Sprintf("%d-%d of %d  ↑/↓ scroll  %s", m.offset+1, end, len(m.lines), footer)
	}
	return renderDialog(m.dialog, body, footer)
}
