// internal/tui/app.go
//
// Interactive mode for the launcher, built on bubbletea's Elm architecture:
// the Model holds the discovered projects and a command prompt, Update
// applies the input grammar, and View renders the listing above the prompt.
//
// Each iteration of the interactive loop is one program run: picking a
// project quits the program so the outer loop (interactive.go) can execute
// it on the plain terminal, then a fresh program re-enters the listing.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/project"
	"portfolio/internal/runner"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the interactive-mode application state.
type Model struct {
	records []project.Record
	input   textinput.Model

	showHelp bool
	message  string

	// selection is set when the user picked a runnable project; the
	// program quits and the outer loop dispatches it.
	selection *project.Record

	quitting    bool
	interrupted bool
}

// NewModel builds the interactive model over one discovery result.
func NewModel(records []project.Record) Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render("Your choice: ")
	input.Placeholder = "number, name, list, help, quit"
	input.Focus()
	return Model{records: records, input: input}
}

// Selection returns the project picked in this program run, if any.
func (m Model) Selection() (project.Record, bool) {
	if m.selection == nil {
		return project.Record{}, false
	}
	return *m.selection, true
}

// Quitting reports whether the user asked to leave the loop.
func (m Model) Quitting() bool { return m.quitting }

// Interrupted reports whether the program ended on Ctrl+C.
func (m Model) Interrupted() bool { return m.interrupted }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.accept()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// accept applies the input grammar to the submitted line.
func (m Model) accept() (tea.Model, tea.Cmd) {
	cmd := parseCommand(m.input.Value())
	m.input.SetValue("")
	m.message = ""

	switch cmd.kind {
	case cmdEmpty:
		return m, nil
	case cmdQuit:
		m.quitting = true
		return m, tea.Quit
	case cmdList:
		m.showHelp = false
		return m, nil
	case cmdHelp:
		m.showHelp = true
		return m, nil
	case cmdIndex:
		if cmd.index < 1 || cmd.index > len(m.records) {
			m.message = fmt.Sprintf("Invalid number. Choose 1-%d.", len(m.records))
			return m, nil
		}
		rec := m.records[cmd.index-1]
		m.selection = &rec
		return m, tea.Quit
	default:
		rec, err := runner.Resolve(cmd.query, m.records)
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.selection = &rec
		return m, tea.Quit
	}
}

func (m Model) View() string {
	if m.quitting || m.interrupted || m.selection != nil {
		// Leave the scrollback clean for the dispatch output.
		return ""
	}
	view := RenderListing(m.records) + "\n"
	if m.showHelp {
		view += RenderHelp() + "\n\n"
	}
	if m.message != "" {
		view += messageStyle.Render(m.message) + "\n\n"
	}
	return view + m.input.View() + "\n"
}
