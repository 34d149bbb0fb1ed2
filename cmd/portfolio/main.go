// cmd/portfolio/main.go
//
// Entry point for the portfolio launcher. It scans projects/ once at
// startup, then serves one of the surfaces: a plain listing, a one-shot
// dispatch by name, or the interactive menu.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/logbook"
	"portfolio/internal/project"
	"portfolio/internal/runner"
	"portfolio/internal/tui"
)

const version = "portfolio v2.0.0"

func main() {
	var (
		listFlag        bool
		interactiveFlag bool
		projectFlag     string
		versionFlag     bool
	)
	flag.BoolVar(&listFlag, "list", false, "list all available projects")
	flag.BoolVar(&listFlag, "l", false, "list all available projects (shorthand)")
	flag.BoolVar(&interactiveFlag, "interactive", false, "run in interactive mode")
	flag.BoolVar(&interactiveFlag, "i", false, "run in interactive mode (shorthand)")
	flag.StringVar(&projectFlag, "project", "", "run a specific project by name")
	flag.StringVar(&projectFlag, "p", "", "run a specific project by name (shorthand)")
	flag.BoolVar(&versionFlag, "version", false, "print the version and exit")
	flag.BoolVar(&versionFlag, "v", false, "print the version and exit (shorthand)")
	flag.Parse()

	if versionFlag {
		fmt.Println(version)
		return
	}

	// Outside the interactive program (which handles Ctrl+C itself) an
	// interrupt ends the process with a farewell, not a stack trace.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Println("\n\nPortfolio session interrupted. Goodbye!")
		os.Exit(0)
	}()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "determine working directory: %v\n", err)
		return
	}
	if err := config.InitPortfolioDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "init %s: %v\n", config.PortfolioDir, err)
		return
	}
	cfg, err := config.New(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	log, err := logbook.New(filepath.Join(cfg.LogsDir(), "portfolio.log"))
	if err != nil {
		// A broken log sink degrades to no logging, never to a failed launch.
		fmt.Fprintf(os.Stderr, "open logbook: %v\n", err)
		log = nil
	}

	records, err := project.Discover(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	log.Info("discovered %d projects under %s", len(records), cfg.ProjectsDir())

	run := runner.New(runner.WithLogbook(log))

	switch {
	case listFlag:
		fmt.Println(tui.RenderListing(records))
	case interactiveFlag:
		if err := tui.Loop(records, run, log); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case projectFlag != "":
		dispatch(projectFlag, records, run)
	default:
		fmt.Println(tui.RenderListing(records))
		if len(records) == 0 {
			return
		}
		fmt.Print("\nWould you like to enter interactive mode? (y/n): ")
		if readYes(os.Stdin) {
			if err := tui.Loop(records, run, log); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}
}

// dispatch resolves one query and runs the project. Resolution and run
// failures are printed and control returns normally.
func dispatch(query string, records []project.Record, run *runner.Runner) {
	rec, err := runner.Resolve(query, records)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Use --list to see all available projects.")
		return
	}
	run.Run(rec)
}

func readYes(r *os.File) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
