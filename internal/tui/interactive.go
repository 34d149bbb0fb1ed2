package tui

import (
	"bufio"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/logbook"
	"portfolio/internal/project"
	"portfolio/internal/runner"
)

// Loop drives interactive mode: each iteration re-enters the listing,
// accepts one command through the Model, and dispatches any picked project
// on the plain terminal before starting the next iteration. The loop ends
// on an explicit quit, on Ctrl+C (with a distinct farewell), or when
// discovery yielded no projects at all.
func Loop(records []project.Record, run *runner.Runner, log *logbook.Logbook) error {
	if len(records) == 0 {
		fmt.Println(RenderListing(records))
		return nil
	}
	log.Info("interactive session opened (%d projects)", len(records))
	stdin := bufio.NewReader(os.Stdin)

	for {
		p := tea.NewProgram(NewModel(records))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		m, ok := final.(Model)
		if !ok {
			return fmt.Errorf("tui: unexpected final model %T", final)
		}

		switch {
		case m.Interrupted():
			fmt.Println("\nPortfolio session interrupted. Goodbye!")
			log.Info("interactive session interrupted")
			return nil
		case m.Quitting():
			fmt.Println("Goodbye! Thanks for exploring the portfolio!")
			log.Info("interactive session closed")
			return nil
		}

		if rec, ok := m.Selection(); ok {
			run.Run(rec)
			fmt.Print("\nPress Enter to continue...")
			if _, err := stdin.ReadString('\n'); err != nil {
				// Closed stdin cannot sustain the loop.
				fmt.Println()
				return nil
			}
		}
	}
}
