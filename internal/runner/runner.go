// Package runner resolves user queries against discovered projects and
// dispatches the chosen project according to its kind. Notebook projects
// only ever get guidance text; script projects are loaded and executed
// inside a scoped ExecutionContext that is restored on every exit path.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"portfolio/internal/logbook"
	"portfolio/internal/project"
)

// Outcome reports one dispatch: success flag plus a human-readable status.
// Err carries the classified failure when Success is false.
type Outcome struct {
	Success bool
	Status  string
	Err     error
}

// Runner executes projects. Construct with New; the zero value is not usable.
type Runner struct {
	ctx    ExecutionContext
	loader Loader
	log    *logbook.Logbook
	out    io.Writer
}

// Option customizes Runner construction for tests and alternate runtimes.
type Option func(*Runner)

// WithContext overrides the execution context (tests inject a fake).
func WithContext(ctx ExecutionContext) Option {
	return func(r *Runner) {
		if ctx != nil {
			r.ctx = ctx
		}
	}
}

// WithLoader overrides the entry-unit loader.
func WithLoader(loader Loader) Option {
	return func(r *Runner) {
		if loader != nil {
			r.loader = loader
		}
	}
}

// WithLogbook attaches a logbook for run-audit entries.
func WithLogbook(log *logbook.Logbook) Option {
	return func(r *Runner) { r.log = log }
}

// WithOutput redirects status output (defaults to stdout).
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		if out != nil {
			r.out = out
		}
	}
}

// New returns a Runner backed by the OS context and the yaegi loader.
func New(opts ...Option) *Runner {
	r := &Runner{
		ctx:    NewOSContext(),
		loader: GoLoader{},
		out:    os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run dispatches one project. It never panics past its own boundary: every
// failure from the loaded unit is classified and reported as a failed
// Outcome. Interrupt signals are not intercepted here and reach the
// command surface.
func (r *Runner) Run(rec project.Record) Outcome {
	fmt.Fprintf(r.out, "Starting project: %s (%s)\n", rec.Name, rec.Kind)
	fmt.Fprintf(r.out, "Entry file: %s\n", rec.EntryPath)
	if rec.Kind == project.NotebookKind {
		return r.runNotebook(rec)
	}
	return r.runScript(rec)
}

// runNotebook prints guidance only. Notebooks are never executed.
func (r *Runner) runNotebook(rec project.Record) Outcome {
	fmt.Fprintf(r.out, "This is a notebook project and is not executed here.\n")
	fmt.Fprintf(r.out, "To open it: jupyter notebook %s\n", rec.EntryPath)
	status := fmt.Sprintf("notebook instructions printed for %s", rec.Name)
	r.log.Run(rec.Name, string(rec.Kind), true, status)
	return Outcome{Success: true, Status: status}
}

func (r *Runner) runScript(rec project.Record) (out Outcome) {
	if _, err := os.Stat(rec.EntryPath); err != nil {
		return r.fail(rec, FailureMissingResource, err)
	}

	prevDir, err := r.ctx.Workdir()
	if err != nil {
		return r.fail(rec, FailureExecution, fmt.Errorf("capture workdir: %w", err))
	}
	prevPath := r.ctx.SearchPath()

	srcDir := filepath.Join(rec.RootPath, "src")
	scoped := prevPath
	added := false
	if !containsEntry(prevPath, srcDir) {
		scoped = append([]string{srcDir}, prevPath...)
		added = true
	}

	// Restoration is unconditional: it runs on success, on classified
	// failure, and when the loaded unit panics. Only the search-path entry
	// this call added is removed.
	defer func() {
		if added {
			r.ctx.SetSearchPath(prevPath)
		}
		if derr := r.ctx.SetWorkdir(prevDir); derr != nil {
			r.log.Warn("restore workdir %s: %v", prevDir, derr)
		}
		if p := recover(); p != nil {
			out = r.fail(rec, FailureExecution, fmt.Errorf("entry unit panicked: %v", p))
		}
	}()

	if added {
		r.ctx.SetSearchPath(scoped)
	}
	if err := r.ctx.SetWorkdir(rec.RootPath); err != nil {
		return r.fail(rec, FailureExecution, fmt.Errorf("enter project dir: %w", err))
	}

	fmt.Fprintf(r.out, "Loading entry unit for %s\n", rec.Name)
	if err := r.loader.LoadAndRun(rec.EntryPath, scoped); err != nil {
		return r.fail(rec, classifyLoadError(err), err)
	}

	status := fmt.Sprintf("project %s completed successfully", rec.Name)
	fmt.Fprintf(r.out, "%s\n", status)
	r.log.Run(rec.Name, string(rec.Kind), true, status)
	return Outcome{Success: true, Status: status}
}

// fail prints the failure with its kind as the distinguishing marker and
// converts it to a failed Outcome.
func (r *Runner) fail(rec project.Record, kind FailureKind, cause error) Outcome {
	err := &RunError{FailureKind: kind, Project: rec.Name, Err: cause}
	fmt.Fprintf(r.out, "error [%s]: %v\n", kind, cause)
	r.log.Run(rec.Name, string(rec.Kind), false, err.Error())
	return Outcome{Success: false, Status: err.Error(), Err: err}
}

func containsEntry(entries []string, target string) bool {
	for _, entry := range entries {
		if entry == target {
			return true
		}
	}
	return false
}
