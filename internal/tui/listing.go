package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/project"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	nameStyle = lipgloss.NewStyle().Bold(true)

	scriptBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			SetString("[script]")

	notebookBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			SetString("[notebook]")

	detailStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
)

// RenderListing formats the discovered projects for display, both for the
// --list flag and as the body of the interactive view. Entries are numbered
// 1-based in discovery order; the numbers are what the interactive index
// grammar selects by.
func RenderListing(records []project.Record) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("DATA SCIENCE PROJECTS PORTFOLIO"))
	b.WriteString("\n")
	if len(records) == 0 {
		b.WriteString("\nNo projects found.\n")
		b.WriteString("Script projects live in projects/<name>/src/main.go\n")
		b.WriteString("Notebook projects live in projects/<name>/notebook.ipynb\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Total projects: %d\n", len(records))
	for i, rec := range records {
		badge := scriptBadge
		if rec.Kind == project.NotebookKind {
			badge = notebookBadge
		}
		fmt.Fprintf(&b, "\n%2d. %s %s\n", i+1, nameStyle.Render(rec.DisplayName()), badge)
		b.WriteString(detailStyle.Render(rec.Description))
		b.WriteString("\n")
		b.WriteString(detailStyle.Render("Location: " + rec.RootPath))
		b.WriteString("\n")
	}
	return b.String()
}

const helpText = `How to use:
  <number>          run the project with that listing number
  <name>            run a project by name (partial names work)
  list, l           show the projects again
  help, h           show this help
  quit, q, exit     leave the launcher

Project layout:
  projects/<name>/src/main.go     script project entry point
  projects/<name>/notebook.ipynb  notebook project (instructions only)
  projects/<name>/README.md       mined for the description`

// RenderHelp returns the interactive help text.
func RenderHelp() string {
	return helpText
}
